package handler

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/shared/response"
)

//go:embed endpoints.json
var endpointsJSON []byte

// HealthChecker is satisfied by *database.PostgresDB
type HealthChecker interface {
	HealthCheck(ctx context.Context) (*database.PoolStats, error)
}

// APIHandler serves the endpoint index and the health probe
type APIHandler struct {
	endpoints map[string]json.RawMessage
	db        HealthChecker
	version   string
}

func NewAPIHandler(db HealthChecker, version string) (*APIHandler, error) {
	endpoints := make(map[string]json.RawMessage)
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		return nil, fmt.Errorf("failed to parse endpoint documentation: %w", err)
	}

	return &APIHandler{
		endpoints: endpoints,
		db:        db,
		version:   version,
	}, nil
}

// Endpoints describes every route
// GET /api
func (h *APIHandler) Endpoints(c *gin.Context) {
	response.OK(c, gin.H{"endpoints": h.endpoints})
}

// Health pings the database
// GET /api/health
func (h *APIHandler) Health(c *gin.Context) {
	health := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   h.version,
	}

	if h.db == nil {
		health["status"] = "degraded"
		health["database"] = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Data: health})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	stats, err := h.db.HealthCheck(ctx)
	if err != nil {
		health["status"] = "degraded"
		health["database"] = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response.Response{Success: false, Data: health})
		return
	}

	health["database"] = stats
	response.OK(c, health)
}
