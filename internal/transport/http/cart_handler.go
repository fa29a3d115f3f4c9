package handlers

import (
	"net/http"

	"coursehub/internal/application/usecase"
	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

type courseReq struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	ImageURL string  `json:"imageUrl"`
}

func (r courseReq) snapshot() domain.CourseSnapshot {
	return domain.CourseSnapshot{
		CourseID: r.CourseID,
		Title:    r.Title,
		Price:    r.Price,
		Duration: r.Duration,
		ImageURL: r.ImageURL,
	}
}

type courseIDReq struct {
	CourseID string `json:"courseId"`
}

type updateQuantityReq struct {
	CourseID string `json:"courseId"`
	Action   string `json:"action"`
}

type CartHandler struct {
	log  *logger.Logger
	cart *usecase.CartUseCase
}

func NewCartHandler(log *logger.Logger, cart *usecase.CartUseCase) *CartHandler {
	return &CartHandler{log: log.With("handler", "cart"), cart: cart}
}

func (h *CartHandler) Add(c *gin.Context) {
	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	items, err := h.cart.Add(c.Request.Context(), middleware.UserID(c), req.snapshot())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart": items})
}

func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.cart.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": items})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	items, err := h.cart.UpdateQuantity(c.Request.Context(), middleware.UserID(c), req.CourseID, req.Action)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "cart": items})
}

func (h *CartHandler) Remove(c *gin.Context) {
	var req courseIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	items, err := h.cart.Remove(c.Request.Context(), middleware.UserID(c), req.CourseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed", "cart": items})
}
