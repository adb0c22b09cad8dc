package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shophub/internal/review/models"
	"shophub/internal/review/service"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:productId", h.GetByProduct)
	rg.GET("/user/:userName", h.GetByUser)
	rg.POST("", h.Create)
}

// GetByProduct returns all reviews for a product, in storage order
func (h *ReviewHandler) GetByProduct(c *gin.Context) {
	productID := c.Param("productId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.svc.GetByProduct(ctx, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByUser(c *gin.Context) {
	userName := c.Param("userName")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.svc.GetByUser(ctx, userName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create stores a review; id and createdAt are server-assigned
func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Review Service is running")
}
