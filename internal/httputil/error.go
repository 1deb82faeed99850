package httputil

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func requestAttrs(r *http.Request) []any {
	return []any{
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
	}
}

func InternalServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, append(requestAttrs(r), "error", err)...)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	attrs := append(requestAttrs(r), "message", msg)
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	slog.Warn("bad request", attrs...)
	http.Error(w, msg, http.StatusBadRequest)
}

func NotFound(w http.ResponseWriter, r *http.Request, msg string, err error) {
	attrs := append(requestAttrs(r), "message", msg)
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	slog.Warn("not found", attrs...)
	http.Error(w, msg, http.StatusNotFound)
}
