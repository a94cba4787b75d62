package topic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tracker_api/internal/domain"
	"tracker_api/internal/httpx"
)

type repository interface {
	Create(ctx context.Context, input CreateInput) (domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
	Get(ctx context.Context, id int64) (domain.TopicWithQuestions, error)
	ListQuestions(ctx context.Context, topicID int64) ([]domain.Question, error)
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

func (h *Handler) Register(r chi.Router) {
	r.Get("/topics", h.handleList)
	r.Post("/topics", h.handleCreate)
	r.Get("/topics/{topicId}", h.handleGet)
	r.Get("/topics/{topicId}/questions", h.handleListQuestions)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreateInput
	if err := httpx.DecodeJSON(w, r, &input); err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "name is required")
		return
	}

	t, err := h.store.Create(r.Context(), input)
	if err != nil {
		httpx.LogError(h.logger, r, "create topic", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while creating the topic")
		return
	}

	httpx.WriteJSON(w, h.logger, http.StatusCreated, map[string]any{
		"message": "Topic created successfully",
		"topic":   t,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.List(r.Context())
	if err != nil {
		httpx.LogError(h.logger, r, "list topics", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while fetching topics")
		return
	}
	httpx.WriteJSON(w, h.logger, http.StatusOK, topics)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	// 单条查询，唯一区分 404 的接口
	id, err := httpx.IDParam(r, "topicId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid topic id")
		return
	}

	t, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpx.WriteError(w, h.logger, http.StatusNotFound, "Topic not found")
			return
		}
		httpx.LogError(h.logger, r, "get topic", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while fetching the topic")
		return
	}
	httpx.WriteJSON(w, h.logger, http.StatusOK, t)
}

func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	topicID, err := httpx.IDParam(r, "topicId")
	if err != nil {
		httpx.WriteError(w, h.logger, http.StatusBadRequest, "invalid topic id")
		return
	}

	questions, err := h.store.ListQuestions(r.Context(), topicID)
	if err != nil {
		httpx.LogError(h.logger, r, "list questions", err)
		httpx.WriteError(w, h.logger, http.StatusInternalServerError, "An error occurred while fetching questions")
		return
	}
	httpx.WriteJSON(w, h.logger, http.StatusOK, questions)
}
