// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the portfolio content and asset tools for LLM integration via
// stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tahmid/folio/internal/activity"
	"github.com/tahmid/folio/internal/assets"
	"github.com/tahmid/folio/internal/portfolio"
)

// contentResources names the collections the content tools accept.
const contentResources = "projects, experiences, certificates, achievements, blogs"

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp    *server.MCPServer
	client *portfolio.Client
	store  *assets.Store
	log    *activity.DB
}

// New creates an MCP server with all portfolio tools registered.
func New(client *portfolio.Client, store *assets.Store, log *activity.DB) *Server {
	s := &Server{client: client, store: store, log: log}

	s.mcp = server.NewMCPServer(
		"Folio",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_content",
		mcp.WithDescription("List all entries of one content collection as JSON."),
		mcp.WithString("resource", mcp.Required(),
			mcp.Description("Collection name: "+contentResources)),
	), s.listContent)

	s.mcp.AddTool(mcp.NewTool("get_content",
		mcp.WithDescription("Read one content entry by id as JSON."),
		mcp.WithString("resource", mcp.Required(),
			mcp.Description("Collection name: "+contentResources)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Entity id")),
	), s.getContent)

	s.mcp.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Read the profile, contact details, and skill categories as one JSON document."),
	), s.getProfile)

	s.mcp.AddTool(mcp.NewTool("recent_activity",
		mcp.WithDescription("Show the most recent admin actions, newest first."),
		mcp.WithString("limit", mcp.Description("Maximum entries to return (default 20)")),
	), s.recentActivity)

	s.mcp.AddTool(mcp.NewTool("list_assets",
		mcp.WithDescription("List uploaded asset filenames. Reference them as /assets/<filename>."),
	), s.listAssets)

	s.mcp.AddTool(mcp.NewTool("upload_asset",
		mcp.WithDescription("Download a file from an HTTP(S) URL or decode a base64 data URI and store it "+
			"as a portfolio asset. Returns the public path and a ready-to-paste Markdown image."),
		mcp.WithString("url", mcp.Required(), mcp.Description("http(s) URL or data: URI of the file")),
		mcp.WithString("filename", mcp.Description("Optional filename override")),
	), s.uploadAsset)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func jsonResult(v any) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out))
}

func (s *Server) listContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resource, err := req.RequireString("resource")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var v any
	switch resource {
	case "projects":
		v, err = s.client.Projects().List(ctx)
	case "experiences":
		v, err = s.client.Experiences().List(ctx)
	case "certificates":
		v, err = s.client.Certificates().List(ctx)
	case "achievements":
		v, err = s.client.Achievements().List(ctx)
	case "blogs":
		v, err = s.client.Blogs().List(ctx)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown resource %q (expected one of: %s)", resource, contentResources)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(v), nil
}

func (s *Server) getContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resource, err := req.RequireString("resource")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var v any
	switch resource {
	case "projects":
		v, err = s.client.Projects().Get(ctx, id)
	case "experiences":
		v, err = s.client.Experiences().Get(ctx, id)
	case "certificates":
		v, err = s.client.Certificates().Get(ctx, id)
	case "achievements":
		v, err = s.client.Achievements().Get(ctx, id)
	case "blogs":
		v, err = s.client.Blogs().Get(ctx, id)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown resource %q (expected one of: %s)", resource, contentResources)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s/%s", resource, id)), nil
	}
	return jsonResult(v), nil
}

func (s *Server) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	about, err := s.client.About(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	contact, err := s.client.Contact(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	skills, err := s.client.Skills(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"about":   about,
		"contact": contact,
		"skills":  skills,
	}), nil
}

func (s *Server) recentActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 20
	if v, err := req.RequireString("limit"); err == nil && v != "" {
		fmt.Sscanf(v, "%d", &limit)
	}
	entries, err := s.log.Recent(limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(entries), nil
}

func (s *Server) listAssets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.store.List()
	if len(names) == 0 {
		return mcp.NewToolResultText("no assets uploaded"), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}
