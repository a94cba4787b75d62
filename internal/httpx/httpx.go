package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var ErrInvalidID = errors.New("invalid id")

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	// 统一 JSON 响应输出
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("json encode error", zap.Error(err))
	}
}

func WriteError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	WriteJSON(w, logger, status, map[string]string{"error": message})
}

// DecodeJSON 限制请求体大小，并要求只包含一个 JSON 对象
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

func IDParam(r *http.Request, name string) (int64, error) {
	// 解析并校验路径参数
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// LogError 记录服务端错误，附带 chi 生成的 request id
func LogError(logger *zap.Logger, r *http.Request, msg string, err error) {
	logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}
