package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"event-portal.backend/pkg/session"
)

type HealthHandler struct {
	mongoClient *mongo.Client
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{mongoClient: mongoClient}
}

// Health reports whether the document store and session backend respond.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoHealthy := h.mongoClient != nil && h.mongoClient.Ping(ctx, readpref.Primary()) == nil
	redisHealthy := session.Healthy(ctx)

	status := http.StatusOK
	if !mongoHealthy || !redisHealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": "ok",
		"mongo":  mongoHealthy,
		"redis":  redisHealthy,
	})
}
