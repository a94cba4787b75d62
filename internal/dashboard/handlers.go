package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tracker_api/internal/httpx"
)

type metricsReader interface {
	Metrics(ctx context.Context) (Metrics, error)
}

type Handler struct {
	store  metricsReader
	logger *zap.Logger
}

func NewHandler(store metricsReader, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/metrics", h.handleMetrics)
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	// 看板统计汇总，失败时不返回部分结果
	metrics, err := h.store.Metrics(r.Context())
	if err != nil {
		httpx.LogError(h.logger, r, "dashboard metrics", err)
		httpx.WriteJSON(w, h.logger, http.StatusInternalServerError, map[string]string{
			"message": "Error retrieving dashboard metrics",
		})
		return
	}
	httpx.WriteJSON(w, h.logger, http.StatusOK, metrics)
}
