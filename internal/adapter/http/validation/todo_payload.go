package validation

import (
	"errors"
	"strings"

	"todoservice/internal/adapter/http/dto"
	"todoservice/internal/core/domain"
)

// MaxTextBytes is the capacity of the todos.text TEXT column.
const MaxTextBytes = 65535

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

// BuildTodoOptions turns a create request into domain options. Only a
// malformed when is rejected here; empty fields are left to the service.
func BuildTodoOptions(req dto.CreateTodoRequest) (domain.TodoOptions, error) {
	if len(req.Text) > MaxTextBytes {
		return domain.TodoOptions{}, ErrInvalidTodoPayload
	}

	when, err := domain.ParseWhen(req.When)
	if err != nil {
		return domain.TodoOptions{}, ErrInvalidTodoPayload
	}

	opts := domain.TodoOptions{
		Text: req.Text,
		When: when,
	}

	if req.ID != nil {
		id := strings.TrimSpace(*req.ID)
		if id == "" {
			return domain.TodoOptions{}, ErrInvalidTodoPayload
		}
		opts.ID = id
	}

	return opts, nil
}
