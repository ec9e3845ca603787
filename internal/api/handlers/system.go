package handlers

import (
	"database/sql"
	"net/http"

	"github.com/ndewijer/fii-screener/internal/api/response"
	"github.com/ndewijer/fii-screener/internal/database"
)

// SystemHandler serves health and metadata endpoints.
type SystemHandler struct {
	db *sql.DB
}

// NewSystemHandler creates a SystemHandler with the given database connection.
func NewSystemHandler(db *sql.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports service and database health.
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := database.HealthCheck(h.db); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "database unavailable", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
