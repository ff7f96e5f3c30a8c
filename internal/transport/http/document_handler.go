package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// DocumentHandler serves the published JSON result document.
type DocumentHandler struct {
	docPath string
	logger  *slog.Logger
	metrics *Metrics
}

// NewDocumentHandler creates a document handler serving the file at docPath.
func NewDocumentHandler(docPath string, logger *slog.Logger, metrics *Metrics) *DocumentHandler {
	return &DocumentHandler{
		docPath: docPath,
		logger:  logger.With(slog.String("component", "document_handler")),
		metrics: metrics,
	}
}

// GetResult handles GET /api/result. The document is read from disk on every
// request so a rerun of the aggregator is visible without a restart.
func (h *DocumentHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	data, err := os.ReadFile(h.docPath)
	if err != nil {
		h.metrics.DocumentMissing.Inc()
		h.logger.WarnContext(r.Context(), "result document unavailable",
			slog.String("request_id", reqID),
			slog.String("path", h.docPath),
			slog.String("error", err.Error()))

		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "No result document has been published yet"})
		return
	}

	if !json.Valid(data) {
		h.logger.ErrorContext(r.Context(), "result document is not valid JSON",
			slog.String("request_id", reqID),
			slog.String("path", h.docPath))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": "Published document is corrupted"})
		return
	}

	h.metrics.DocumentServed.Inc()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
