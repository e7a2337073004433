package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/amvidal/lgg/internal/models"
)

const datetimeLayout = "02/01/2006 15:04"

func TestParseTodoFile(t *testing.T) {
	content := "# Todos\n\n" +
		"- [ ] Buy milk | 20/08/2025 07:00\n" +
		"      Whole, two bottles. @errand\n" +
		"- [x] File taxes | 10/04/2025 09:00 | 12/04/2025 18:30\n" +
		"- [ ] Title only item\n" +
		"- [x] Done without due |  | 22/08/2025 18:00\n"

	result := ParseTodoFile(content, datetimeLayout)
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Todos) != 4 {
		t.Fatalf("got %d todos, want 4", len(result.Todos))
	}

	milk := result.Todos[0]
	if milk.Title != "Buy milk" || milk.Status != models.StatusPending {
		t.Errorf("todo = %+v", milk)
	}
	if milk.DueDate == nil || !milk.DueDate.Equal(time.Date(2025, time.August, 20, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("due = %v", milk.DueDate)
	}
	if milk.Body != "Whole, two bottles. @errand" {
		t.Errorf("body = %q", milk.Body)
	}
	if len(milk.Tags) != 1 || milk.Tags[0] != "errand" {
		t.Errorf("tags = %v", milk.Tags)
	}

	taxes := result.Todos[1]
	if taxes.Status != models.StatusDone || taxes.DueDate == nil || taxes.DoneDate == nil {
		t.Errorf("todo = %+v", taxes)
	}

	bare := result.Todos[2]
	if bare.Title != "Title only item" || bare.DueDate != nil || bare.DoneDate != nil {
		t.Errorf("todo = %+v", bare)
	}

	doneOnly := result.Todos[3]
	if doneOnly.DueDate != nil {
		t.Errorf("due = %v, want none", doneOnly.DueDate)
	}
	if doneOnly.DoneDate == nil || !doneOnly.DoneDate.Equal(time.Date(2025, time.August, 22, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("done = %v", doneOnly.DoneDate)
	}
}

func TestParseTodoFile_BadDatetimeKeepsItem(t *testing.T) {
	content := "# Todos\n\n- [ ] Buy milk | someday\n- [ ] Next item\n"

	result := ParseTodoFile(content, datetimeLayout)
	if len(result.Todos) != 2 {
		t.Fatalf("got %d todos, want 2", len(result.Todos))
	}
	if result.Todos[0].Title != "Buy milk" || result.Todos[0].DueDate != nil {
		t.Errorf("todo = %+v", result.Todos[0])
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0].Error(), "someday") {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestParseTodoFile_MissingHeader(t *testing.T) {
	result := ParseTodoFile("- [ ] No header\n", datetimeLayout)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Todos) != 0 {
		t.Errorf("todos = %v", result.Todos)
	}

	result = ParseTodoFile("", datetimeLayout)
	if len(result.Errors) != 1 {
		t.Errorf("empty file: errors = %v", result.Errors)
	}
}

func TestParseTodoFile_NonItemLinesIgnored(t *testing.T) {
	content := "# Todos\n\nSome stray prose.\n\n- [X] Uppercase marker\n"
	result := ParseTodoFile(content, datetimeLayout)
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Todos) != 1 || result.Todos[0].Status != models.StatusDone {
		t.Errorf("todos = %+v", result.Todos)
	}
}
