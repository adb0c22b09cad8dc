package handler

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"shophub/internal/review/service"
)

type HealthHandler struct {
	svc      service.ReviewService
	mongoURI string
}

func NewHealthHandler(svc service.ReviewService, mongoURI string) *HealthHandler {
	return &HealthHandler{svc: svc, mongoURI: mongoURI}
}

// Check reports service health plus per-product review counts for debugging.
// It answers 200 even when MongoDB is down; the outage shows up as
// dbStatus "error".
func (h *HealthHandler) Check(c *gin.Context) {
	response := gin.H{
		"status":   "healthy",
		"mongoUri": RedactURI(h.mongoURI),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.svc.GetAll(ctx)
	if err != nil {
		response["dbStatus"] = "error"
		response["error"] = err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	reviewCounts := make(map[string]int64)
	for _, review := range reviews {
		reviewCounts[review.ProductID]++
	}

	response["dbStatus"] = "connected"
	response["reviewCounts"] = reviewCounts
	response["totalReviews"] = len(reviews)
	c.JSON(http.StatusOK, response)
}

var uriCredentials = regexp.MustCompile(`(://[^:/@]+:)[^@]+@`)

// RedactURI masks the password in a user:password@host connection URI so it
// can be echoed in health output.
func RedactURI(uri string) string {
	return uriCredentials.ReplaceAllString(uri, "$1****@")
}
