package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"todoservice/internal/core/domain"
	"todoservice/internal/core/ports"
)

const (
	listTodosQuery = `
SELECT id, text, due_at, status
FROM todos
ORDER BY seq;
`
	getTodoQuery = `
SELECT id, text, due_at, status
FROM todos
WHERE id = ?;
`
	insertTodoQuery = `
INSERT INTO todos (id, text, due_at, status)
VALUES (:id, :text, :due_at, :status);
`
)

const mysqlErrDuplicateEntry = 1062

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID     string       `db:"id"`
	Text   string       `db:"text"`
	DueAt  sql.NullTime `db:"due_at"`
	Status string       `db:"status"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosQuery); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}

	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	if _, err := r.db.NamedExecContext(ctx, insertTodoQuery, mapDomainTodoToTodoRow(todo)); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.Todo{}, domain.ErrTodoAlreadyExists
		}
		return domain.Todo{}, fmt.Errorf("insert todo %s: %w", todo.ID, err)
	}

	var row todoRow
	if err := r.db.GetContext(ctx, &row, getTodoQuery, todo.ID); err != nil {
		return domain.Todo{}, fmt.Errorf("read back todo %s: %w", todo.ID, err)
	}

	return mapTodoRowToDomainTodo(row), nil
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	todo := domain.Todo{
		ID:     row.ID,
		Text:   row.Text,
		Status: domain.TodoStatus(row.Status),
	}

	if row.DueAt.Valid {
		todo.When = row.DueAt.Time.UTC()
	}

	return todo
}

func mapDomainTodoToTodoRow(todo domain.Todo) todoRow {
	row := todoRow{
		ID:     todo.ID,
		Text:   todo.Text,
		Status: string(todo.Status),
	}

	if !todo.When.IsZero() {
		row.DueAt = sql.NullTime{Time: todo.When.UTC(), Valid: true}
	}

	return row
}
