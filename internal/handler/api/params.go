package api

import (
	"net/http"
	"strconv"

	"grocery-pool/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// limitQuery returns nil when the parameter is absent.
func limitQuery(c *gin.Context) (*int, bool) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return nil, false
	}
	return &n, true
}

// idempotencyKeyHeader returns nil when the client sent no Idempotency-Key.
func idempotencyKeyHeader(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
		return nil, false
	}
	return &key, true
}
