package domain

import (
	"encoding/json"
	"time"
)

type TodoStatus string

const (
	TodoStatusUnset   TodoStatus = ""
	TodoStatusLate    TodoStatus = "late"
	TodoStatusPending TodoStatus = "pending"
)

// Todo is an immutable todo entry. Use the With* helpers to derive changed copies.
type Todo struct {
	ID     string
	Text   string
	When   time.Time
	Status TodoStatus
}

// TodoOptions holds the fields a caller may supply when building a Todo.
// Anything left empty keeps its zero value, except ID which is generated.
type TodoOptions struct {
	ID     string
	Text   string
	When   time.Time
	Status TodoStatus
}

func NewTodo(opts TodoOptions, newID func() string) Todo {
	id := opts.ID
	if id == "" && newID != nil {
		id = newID()
	}

	return Todo{
		ID:     id,
		Text:   opts.Text,
		When:   opts.When,
		Status: opts.Status,
	}
}

// IsValid reports whether the todo carries enough data to be created.
// Status is not checked; it is derived afterwards.
func (t Todo) IsValid() bool {
	return t.Text != "" && !t.When.IsZero()
}

func (t Todo) WithText(text string) Todo {
	t.Text = text
	return t
}

func (t Todo) WithStatus(status TodoStatus) Todo {
	t.Status = status
	return t
}

func (t Todo) WithID(id string) Todo {
	t.ID = id
	return t
}

type todoJSON struct {
	Text   string     `json:"text"`
	When   string     `json:"when"`
	Status TodoStatus `json:"status"`
	ID     string     `json:"id"`
}

func (t Todo) MarshalJSON() ([]byte, error) {
	return json.Marshal(todoJSON{
		Text:   t.Text,
		When:   FormatWhen(t.When),
		Status: t.Status,
		ID:     t.ID,
	})
}
