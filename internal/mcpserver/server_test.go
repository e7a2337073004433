package mcpserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amvidal/lgg/internal/clock"
	"github.com/amvidal/lgg/internal/testutil"
)

var now = time.Date(2025, time.August, 15, 14, 30, 0, 0, time.UTC)

func testServer(t *testing.T) *Server {
	t.Helper()
	j, _ := testutil.TestJournal(t, now)
	td, _ := testutil.TestTodos(t, now)
	return New(j, td, testutil.Resolver(), clock.Fixed(now))
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "add_entry":
		result, err = srv.addEntry(ctx, req)
	case "read_entries":
		result, err = srv.readEntries(ctx, req)
	case "add_todo":
		result, err = srv.addTodo(ctx, req)
	case "list_todos":
		result, err = srv.listTodos(ctx, req)
	case "list_tags":
		result, err = srv.listTags(ctx, req)
	case "get_entry_contract":
		result, err = srv.getEntryContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestAddAndReadEntries(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "add_entry", map[string]interface{}{
		"text": "yesterday at 6am: Early start. With @coffee.",
	})
	if r.IsError {
		t.Fatalf("add_entry failed: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), `"title": "Early start."`) {
		t.Errorf("add result = %s", resultText(r))
	}

	r = callTool(t, srv, "read_entries", map[string]interface{}{"on": "yesterday"})
	text := resultText(r)
	if !strings.Contains(text, "Early start.") || !strings.Contains(text, "2025-08-14") {
		t.Errorf("read result = %s", text)
	}

	r = callTool(t, srv, "read_entries", map[string]interface{}{"on": "today"})
	if strings.Contains(resultText(r), "Early start.") {
		t.Error("entry leaked into the wrong day")
	}
}

func TestReadEntries_BadToken(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "read_entries", map[string]interface{}{"on": "someday"})
	if !r.IsError {
		t.Error("expected error for unresolvable token")
	}
}

func TestReadEntries_TagFilter(t *testing.T) {
	srv := testServer(t)
	callTool(t, srv, "add_entry", map[string]interface{}{"text": "today: Walk @health"})
	callTool(t, srv, "add_entry", map[string]interface{}{"text": "today: Lunch @food"})

	r := callTool(t, srv, "read_entries", map[string]interface{}{"tags": "health"})
	text := resultText(r)
	if !strings.Contains(text, "Walk") || strings.Contains(text, "Lunch") {
		t.Errorf("tag filter result = %s", text)
	}
}

func TestAddAndListTodos(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "add_todo", map[string]interface{}{
		"title": "Buy milk",
		"due":   "tomorrow",
		"at":    "9am",
	})
	if r.IsError {
		t.Fatalf("add_todo failed: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "2025-08-16T09:00:00Z") {
		t.Errorf("due not resolved: %s", resultText(r))
	}

	r = callTool(t, srv, "list_todos", map[string]interface{}{"status": "pending"})
	if !strings.Contains(resultText(r), "Buy milk") {
		t.Errorf("list result = %s", resultText(r))
	}

	r = callTool(t, srv, "list_todos", map[string]interface{}{"status": "done"})
	if strings.Contains(resultText(r), "Buy milk") {
		t.Errorf("pending item listed as done: %s", resultText(r))
	}

	r = callTool(t, srv, "list_todos", map[string]interface{}{"status": "later"})
	if !r.IsError {
		t.Error("expected error for bad status")
	}
}

func TestListTags(t *testing.T) {
	srv := testServer(t)
	callTool(t, srv, "add_entry", map[string]interface{}{"text": "today: Walk @health in the @park"})

	r := callTool(t, srv, "list_tags", nil)
	text := resultText(r)
	if !strings.Contains(text, "health") || !strings.Contains(text, "park") {
		t.Errorf("tags = %s", text)
	}
}

func TestGetEntryContract(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_entry_contract", nil)
	if !strings.Contains(resultText(r), "## Day files") {
		t.Error("contract text missing")
	}
}
