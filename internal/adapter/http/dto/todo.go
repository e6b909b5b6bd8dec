package dto

type TodoItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	When   string `json:"when"`
	Status string `json:"status"`
}

// CreateTodoRequest leaves text and when unchecked at bind time: a todo
// missing either is answered with the invalid-data body, not a 400.
type CreateTodoRequest struct {
	ID   *string `json:"id" binding:"omitempty,max=64"`
	Text string  `json:"text"`
	When string  `json:"when"`
}
