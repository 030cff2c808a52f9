package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"contacts-api/pkg/response"
)

type HealthHandler struct {
	Pool   *pgxpool.Pool
	Logger *logrus.Logger
}

func NewHealthHandler(pool *pgxpool.Pool, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Pool: pool, Logger: logger}
}

// Healthchecker GET /api/healthchecker — verifies database reachability.
func (h *HealthHandler) Healthchecker(c *gin.Context) {
	var one int
	if err := h.Pool.QueryRow(c.Request.Context(), "SELECT 1").Scan(&one); err != nil {
		h.Logger.WithError(err).Error("health check failed")
		response.Error(c, http.StatusInternalServerError, "Error connecting to the database", nil)
		return
	}
	response.Message(c, http.StatusOK, "Welcome to the contacts API")
}
