package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"todoservice/internal/core/domain"
	"todoservice/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	ids            ports.IDGenerator
	clock          ports.Clock
}

func NewTodoService(todoRepository ports.TodoRepository, ids ports.IDGenerator, clk ports.Clock) *TodoService {
	return &TodoService{
		todoRepository: todoRepository,
		ids:            ids,
		clock:          clk,
	}
}

func (s *TodoService) List(ctx context.Context) ([]domain.Todo, error) {
	records, err := s.todoRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(records))
	for _, record := range records {
		// Only the text changes; ids come back exactly as stored, empty included.
		todos = append(todos, record.WithText(strings.ToUpper(record.Text)))
	}

	return todos, nil
}

// Create derives the todo's status and hands it to the repository. A todo
// without text or due date yields *domain.InvalidDataError and is not stored.
func (s *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	if todo.ID == "" {
		todo = todo.WithID(s.ids.NewID())
	}

	if !todo.IsValid() {
		zap.L().Debug("rejecting todo with missing data", zap.String("todo_id", todo.ID))
		return domain.Todo{}, domain.NewInvalidDataError(todo)
	}

	now := s.clock.Now()
	record := domain.NewTodo(domain.TodoOptions{
		ID:     todo.ID,
		Text:   todo.Text,
		When:   todo.When,
		Status: domain.StatusFor(todo.When, now),
	}, nil)

	return s.todoRepository.Create(ctx, record)
}

var _ ports.TodoService = (*TodoService)(nil)
