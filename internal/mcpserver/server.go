// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the journal and todo list for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/dates"
	"github.com/amvidal/lgg/internal/journal"
	"github.com/amvidal/lgg/internal/models"
	"github.com/amvidal/lgg/internal/parser"
	"github.com/amvidal/lgg/internal/todos"
)

// Server wraps the MCP server with lgg tools.
type Server struct {
	mcp     *server.MCPServer
	journal *journal.Service
	todos   *todos.Service
	res     *dates.Resolver
	clock   clock.Clock
}

// New creates a new MCP server with all lgg tools registered.
func New(j *journal.Service, t *todos.Service, res *dates.Resolver, clk clock.Clock) *Server {
	s := &Server{journal: j, todos: t, res: res, clock: clk}

	s.mcp = server.NewMCPServer(
		"lgg",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("add_entry",
		mcp.WithDescription("Add a journal entry from a raw line. An optional "+
			"date/time prefix before ': ' is resolved, e.g. "+
			"\"yesterday at 6am: Note title. Body text.\""),
		mcp.WithString("text", mcp.Required(), mcp.Description("The raw entry text")),
	), s.addEntry)

	s.mcp.AddTool(mcp.NewTool("read_entries",
		mcp.WithDescription("Read journal entries. With no arguments the whole "+
			"journal is returned. Date and time tokens follow the "+
			"lgg://entry-format contract."),
		mcp.WithString("on", mcp.Description("Single date token, e.g. \"yesterday\" or \"monday\"")),
		mcp.WithString("from", mcp.Description("Range start date token")),
		mcp.WithString("to", mcp.Description("Range end date token")),
		mcp.WithString("at", mcp.Description("Time token, e.g. \"morning\" or \"6pm\"")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; entries with any of them match")),
	), s.readEntries)

	s.mcp.AddTool(mcp.NewTool("add_todo",
		mcp.WithDescription("Add a pending todo item, optionally with a due date and time."),
		mcp.WithString("title", mcp.Required(), mcp.Description("The todo title")),
		mcp.WithString("body", mcp.Description("Optional longer description")),
		mcp.WithString("due", mcp.Description("Optional due date token")),
		mcp.WithString("at", mcp.Description("Optional due time token")),
	), s.addTodo)

	s.mcp.AddTool(mcp.NewTool("list_todos",
		mcp.WithDescription("List todo items, sorted by due date with undated items last."),
		mcp.WithString("status", mcp.Description("Optional filter: \"pending\" or \"done\"")),
		mcp.WithString("due", mcp.Description("Optional due date token")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; items with any of them match")),
	), s.listTodos)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List every tag used anywhere in the journal, sorted."),
	), s.listTags)

	s.mcp.AddTool(mcp.NewTool("get_entry_contract",
		mcp.WithDescription("Returns the canonical lgg entry format contract. "+
			"Call this before producing journal or todo content."),
	), s.getEntryContract)

	// Resource: entry format contract.
	s.mcp.AddResource(
		mcp.NewResource("lgg://entry-format", "Entry Format Contract",
			mcp.WithResourceDescription("Canonical Markdown grammar for day files and the todo list."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readEntryFormatResource,
	)

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

func (s *Server) addEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in := parser.ParseInput(text, s.res, s.clock.Now())
	entry, warnings, err := s.journal.CreateEntry(in)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(struct {
		Entry    models.JournalEntry `json:"entry"`
		Warnings []string            `json:"warnings,omitempty"`
	}{entry, errorStrings(warnings)}), nil
}

func (s *Server) readEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := models.ReadOptions{Tags: splitTags(req.GetString("tags", ""))}
	ref := s.clock.Now()

	on := req.GetString("on", "")
	from := req.GetString("from", "")
	to := req.GetString("to", "")
	switch {
	case on != "":
		filter, ok := s.res.ParseDateToken(on, "", ref)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized date token: %q", on)), nil
		}
		opts.Dates = &filter
	case from != "" || to != "":
		// A one-sided range extends to today.
		if from == "" {
			from = "today"
		}
		if to == "" {
			to = "today"
		}
		filter, ok := s.res.ParseDateToken(from, to, ref)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized date token: %q", from)), nil
		}
		opts.Dates = &filter
	}

	if at := req.GetString("at", ""); at != "" {
		t, ok := s.res.ParseTimeToken(at)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized time token: %q", at)), nil
		}
		tf := dates.SingleTime(t)
		opts.Time = &tf
	}

	res := s.journal.ReadEntries(opts)
	return jsonResult(struct {
		Entries  []models.JournalEntry `json:"entries"`
		Warnings []string              `json:"warnings,omitempty"`
	}{res.Entries, errorStrings(res.Errors)}), nil
}

func (s *Server) addTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	in := models.TodoWriteEntry{Title: title, Body: req.GetString("body", "")}

	if due := req.GetString("due", ""); due != "" {
		filter, ok := s.res.ParseDateToken(due, "", s.clock.Now())
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized date token: %q", due)), nil
		}
		in.DueDate = &filter.Start
	}
	if at := req.GetString("at", ""); at != "" {
		t, ok := s.res.ParseTimeToken(at)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized time token: %q", at)), nil
		}
		in.Time = &t
	}

	entry, err := s.todos.CreateTodo(in)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(entry), nil
}

func (s *Server) listTodos(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := models.ReadTodoOptions{Tags: splitTags(req.GetString("tags", ""))}

	switch status := req.GetString("status", ""); status {
	case "":
	case "pending":
		st := models.StatusPending
		opts.Status = &st
	case "done":
		st := models.StatusDone
		opts.Status = &st
	default:
		return mcp.NewToolResultError(fmt.Sprintf("status must be \"pending\" or \"done\", got %q", status)), nil
	}

	if due := req.GetString("due", ""); due != "" {
		filter, ok := s.res.ParseDateToken(due, "", s.clock.Now())
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized date token: %q", due)), nil
		}
		opts.DueDate = &filter
	}

	res := s.todos.ReadTodos(opts)
	return jsonResult(struct {
		Todos    []models.TodoEntry `json:"todos"`
		Warnings []string           `json:"warnings,omitempty"`
	}{res.Todos, errorStrings(res.Errors)}), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := s.journal.SearchAllTags()
	return jsonResult(struct {
		Tags     []string `json:"tags"`
		Warnings []string `json:"warnings,omitempty"`
	}{res.Tags, errorStrings(res.Errors)}), nil
}

func (s *Server) getEntryContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(EntryFormatContract), nil
}

func (s *Server) readEntryFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "lgg://entry-format",
			MIMEType: "text/markdown",
			Text:     EntryFormatContract,
		},
	}, nil
}

func jsonResult(v any) *mcp.CallToolResult {
	out, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(out))
}

func errorStrings(errs []models.QueryError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, strings.TrimPrefix(t, "@"))
		}
	}
	return out
}
