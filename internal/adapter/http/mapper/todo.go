package mapper

import (
	"todoservice/internal/adapter/http/dto"
	"todoservice/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:     todo.ID,
		Text:   todo.Text,
		When:   domain.FormatWhen(todo.When),
		Status: string(todo.Status),
	}
}
