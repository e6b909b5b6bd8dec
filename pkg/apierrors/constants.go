package apierrors

const (
	MsgFailListTodo       = "errorListTodo"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoAlreadyExists  = "todoAlreadyExists"
	MsgFailCreateTodo     = "failCreateTodo"
)
