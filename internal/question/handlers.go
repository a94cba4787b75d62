package question

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tracker_api/internal/domain"
	"tracker_api/internal/httpx"
)

type repository interface {
	Create(ctx context.Context, topicID int64, input CreateInput) (domain.Question, error)
	Update(ctx context.Context, id int64, input UpdateInput) (domain.Question, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	store  repository
	logger *zap.Logger
}

func NewHandler(store repository, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Register 注册题目相关路由，列表查询由 topic handler 负责
func (h *Handler) Register(r chi.Router) {
	r.Post("/topics/{topicId}/questions", h.handleCreate)
	r.Put("/topics/{topicId}/questions/{questionId}", h.handleUpdate)
	r.Delete("/topics/{topicId}/questions/{questionId}", h.handleDelete)
}

type questionResponse struct {
	Message  string          `json:"message"`
	Question domain.Question `json:"question"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	topicID, err := httpx.IDParam(r, "topicId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid topic id")
		return
	}

	var input CreateInput
	if err := httpx.DecodeJSON(w, r, &input); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "title is required")
		return
	}

	q, err := h.store.Create(r.Context(), topicID, input)
	if err != nil {
		httpx.LogError(h.logger, r, "create question", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while creating the question")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusCreated, questionResponse{
		Message:  "Question created successfully",
		Question: q,
	})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	// 更新资源（支持部分字段），找不到题目也按 500 处理
	id, err := httpx.IDParam(r, "questionId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid question id")
		return
	}

	var input UpdateInput
	if err := httpx.DecodeJSON(w, r, &input); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			httpx.WriteError(w, h.logger, http.StatusBadRequest, "title cannot be empty")
			return
		}
		input.Title = &trimmed
	}

	q, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		httpx.LogError(h.logger, r, "update question", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while updating the question")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, questionResponse{
		Message:  "Question updated successfully",
		Question: q,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "questionId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid question id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		httpx.LogError(h.logger, r, "delete question", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while deleting the question")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusOK, map[string]string{"message": "Question deleted successfully"})
}
