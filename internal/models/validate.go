package models

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// emailRx is deliberately loose: one @, no whitespace, a dot in the domain.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailErrorMessage is the user-facing text shown when the contact email
// fails the pattern check.
const EmailErrorMessage = "Please enter a valid email address."

// ValidEmail reports whether s matches the email pattern.
func ValidEmail(s string) bool {
	return emailRx.MatchString(s)
}

// Validate checks the required profile fields.
func (a AboutProfile) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Title, validation.Required),
		validation.Field(&a.Description, validation.Required),
	)
}

// Validate checks the required achievement fields.
func (a Achievement) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required),
		validation.Field(&a.Organization, validation.Required),
		validation.Field(&a.Year, validation.Required, validation.Min(1900), validation.Max(2200)),
		validation.Field(&a.Description, validation.Required),
	)
}

// Validate checks the required blog fields and tag uniqueness.
func (b Blog) Validate() error {
	if err := validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required),
		validation.Field(&b.Excerpt, validation.Required),
		validation.Field(&b.ContentMarkdown, validation.Required),
	); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(b.Tags))
	for _, t := range b.Tags {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("tags: duplicate tag %q", t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

// Validate checks the required certificate fields.
func (c Certificate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.Date, validation.Required),
	)
}

// Validate checks the required contact fields and the email pattern.
func (c ContactDetails) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email,
			validation.Required.Error(EmailErrorMessage),
			validation.Match(emailRx).Error(EmailErrorMessage)),
		validation.Field(&c.Phone, validation.Required),
		validation.Field(&c.Address, validation.Required),
	)
}

// Validate checks the required experience fields.
func (e Experience) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.CompanyName, validation.Required),
		validation.Field(&e.Position, validation.Required),
		validation.Field(&e.Duration, validation.Required),
		validation.Field(&e.Description, validation.Required),
	)
}

// Validate checks the required project fields.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.ShortDescription, validation.Required),
		validation.Field(&p.DetailedDescription, validation.Required),
		validation.Field(&p.Role, validation.Required),
	)
}

// Validate checks the category name. Skill levels are clamped at input time,
// so validation only guards against values written by other clients.
func (s SkillCategory) Validate() error {
	if err := validation.ValidateStruct(&s,
		validation.Field(&s.Category, validation.Required),
	); err != nil {
		return err
	}
	for _, sk := range s.Skills {
		if sk.Level < 0 || sk.Level > 100 {
			return fmt.Errorf("skills: level %d for %q outside [0,100]", sk.Level, sk.Name)
		}
	}
	return nil
}
