package handlers

import (
	"errors"
	"net/http"

	"todoservice/internal/adapter/http/dto"
	"todoservice/internal/adapter/http/mapper"
	"todoservice/internal/adapter/http/middleware"
	"todoservice/internal/adapter/http/validation"
	"todoservice/internal/core/domain"
	"todoservice/internal/core/ports"
	"todoservice/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TodoHandler struct {
	todoService ports.TodoService
	ids         ports.IDGenerator
}

func NewTodoHandler(todoService ports.TodoService, ids ports.IDGenerator) *TodoHandler {
	return &TodoHandler{todoService: todoService, ids: ids}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	todos, err := h.todoService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodo, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	opts, err := validation.BuildTodoOptions(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
		)
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), domain.NewTodo(opts, h.ids.NewID))
	if err != nil {
		var invalid *domain.InvalidDataError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, invalid)
			return
		}

		if errors.Is(err, domain.ErrTodoAlreadyExists) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgTodoAlreadyExists, lang),
			)
			return
		}

		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}
