// Package models defines the portfolio content types exchanged with the
// upstream API. Field tags mirror the API's JSON shape verbatim; date fields
// stay strings because the API treats them as opaque display values.
package models

// SocialLinks holds the optional profile links shown in the hero section.
type SocialLinks struct {
	GitHub     string `json:"github,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	Facebook   string `json:"facebook,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	Codeforces string `json:"codeforces,omitempty"`
	CodeChef   string `json:"codechef,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
}

// AboutProfile is the singleton profile record (no identity).
type AboutProfile struct {
	Name            string      `json:"name"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	LongDescription string      `json:"longDescription,omitempty"`
	Image           string      `json:"image,omitempty"`
	ResumeURL       string      `json:"resumeUrl,omitempty"`
	SocialLinks     SocialLinks `json:"socialLinks"`
}

// Achievement is an award or recognition entry.
type Achievement struct {
	ID           string `json:"_id,omitempty"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         int    `json:"year"`
	Image        string `json:"image,omitempty"`
	Description  string `json:"description"`
	Icon         string `json:"icon,omitempty"`
}

// Blog is a blog post. ContentMarkdown is stored and served verbatim.
type Blog struct {
	ID              string   `json:"_id,omitempty"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	ContentMarkdown string   `json:"content_markdown"`
	CoverImageURL   string   `json:"cover_image_url,omitempty"`
	PublicationDate string   `json:"publication_date,omitempty"`
	Author          string   `json:"author,omitempty"`
	Tags            []string `json:"tags"`
}

// Certificate is a course or credential entry.
type Certificate struct {
	ID            string `json:"_id,omitempty"`
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	CredentialURL string `json:"credential_url,omitempty"`
	Photo         string `json:"photo,omitempty"`
}

// ContactDetails is a singleton addressed by a fixed id configured per
// deployment.
type ContactDetails struct {
	ID           string   `json:"_id,omitempty"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	TwitterURL   string   `json:"twitter_url,omitempty"`
	AvailableFor []string `json:"available_for"`
}

// Experience is a work history entry.
type Experience struct {
	ID               string   `json:"_id,omitempty"`
	CompanyName      string   `json:"company_name"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

// Project is a portfolio project entry.
type Project struct {
	ID                  string   `json:"_id,omitempty"`
	Title               string   `json:"title"`
	CompletionDate      string   `json:"completion_date,omitempty"`
	ShortDescription    string   `json:"short_description"`
	DetailedDescription string   `json:"detailed_description"`
	Role                string   `json:"role"`
	PhotoURL            string   `json:"photo_url,omitempty"`
	Featured            bool     `json:"featured"`
	LiveURL             string   `json:"live_url,omitempty"`
	GitHubURL           string   `json:"github_url,omitempty"`
	Tags                []string `json:"tags"`
}

// Skill is one entry inside a skill category. Level is a 0..100 percentage.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups skills under a named category. The id is absent until
// the server persists the category.
type SkillCategory struct {
	ID       string  `json:"_id,omitempty"`
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}
