package domain

import (
	"encoding/json"
	"errors"
)

const InvalidDataMessage = "invalid data"

var (
	ErrTodoAlreadyExists = errors.New("todo already exists")
	ErrInvalidWhen       = errors.New("invalid when")
)

// InvalidDataError is returned by the service when a todo lacks the data
// needed for creation. Data is a snapshot of the rejected todo, id included.
type InvalidDataError struct {
	Message string
	Data    Todo
}

func NewInvalidDataError(todo Todo) *InvalidDataError {
	return &InvalidDataError{Message: InvalidDataMessage, Data: todo}
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

type invalidDataDetails struct {
	Message string `json:"message"`
	Data    Todo   `json:"data"`
}

// MarshalJSON renders {"error":{"message":...,"data":{...}}}.
func (e *InvalidDataError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error invalidDataDetails `json:"error"`
	}{
		Error: invalidDataDetails{Message: e.Message, Data: e.Data},
	})
}
