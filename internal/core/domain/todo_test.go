package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"todoservice/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodo_DefaultsAndGeneratedID(t *testing.T) {
	calls := 0
	todo := domain.NewTodo(domain.TodoOptions{}, func() string {
		calls++
		return "generated"
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "generated", todo.ID)
	assert.Empty(t, todo.Text)
	assert.True(t, todo.When.IsZero())
	assert.Equal(t, domain.TodoStatusUnset, todo.Status)
}

func TestNewTodo_KeepsGivenID(t *testing.T) {
	todo := domain.NewTodo(domain.TodoOptions{ID: "given"}, func() string {
		t.Fatal("generator must not be called when an id is given")
		return ""
	})

	assert.Equal(t, "given", todo.ID)
}

func TestTodo_IsValid(t *testing.T) {
	when := time.Date(2020, 12, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, domain.Todo{Text: "x", When: when}.IsValid())
	assert.True(t, domain.Todo{Text: "x", When: when, Status: domain.TodoStatusLate}.IsValid())
	assert.False(t, domain.Todo{Text: "", When: when}.IsValid())
	assert.False(t, domain.Todo{Text: "x"}.IsValid())
	assert.False(t, domain.Todo{}.IsValid())
}

func TestTodo_WithHelpersReturnCopies(t *testing.T) {
	original := domain.Todo{ID: "a", Text: "text"}

	changed := original.WithText("other").WithStatus(domain.TodoStatusLate).WithID("b")

	assert.Equal(t, domain.Todo{ID: "a", Text: "text"}, original)
	assert.Equal(t, domain.Todo{ID: "b", Text: "other", Status: domain.TodoStatusLate}, changed)
}

func TestTodo_MarshalJSON(t *testing.T) {
	empty, err := json.Marshal(domain.Todo{ID: "id-1"})
	require.NoError(t, err)
	assert.Equal(t, `{"text":"","when":"","status":"","id":"id-1"}`, string(empty))

	full, err := json.Marshal(domain.Todo{
		ID:     "id-2",
		Text:   "plan trip",
		When:   time.Date(2020, 12, 1, 12, 0, 0, 0, time.UTC),
		Status: domain.TodoStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"text":"plan trip","when":"2020-12-01T12:00:00Z","status":"pending","id":"id-2"}`, string(full))
}

func TestInvalidDataError_JSONShape(t *testing.T) {
	err := domain.NewInvalidDataError(domain.Todo{ID: "3a094da2-9421-4a8f-b3d3-e0a1e55b8ad2"})

	body, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.Equal(t,
		`{"error":{"message":"invalid data","data":{"text":"","when":"","status":"","id":"3a094da2-9421-4a8f-b3d3-e0a1e55b8ad2"}}}`,
		string(body),
	)
	assert.Equal(t, "invalid data", err.Error())
}
