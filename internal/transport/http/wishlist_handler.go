package handlers

import (
	"net/http"

	"coursehub/internal/application/usecase"
	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	log      *logger.Logger
	wishlist *usecase.WishlistUseCase
}

func NewWishlistHandler(log *logger.Logger, wishlist *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{log: log.With("handler", "wishlist"), wishlist: wishlist}
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req courseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	items, err := h.wishlist.Add(c.Request.Context(), middleware.UserID(c), req.snapshot())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist", "wishlist": items})
}

func (h *WishlistHandler) Get(c *gin.Context) {
	items, err := h.wishlist.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": items})
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	var req courseIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	items, err := h.wishlist.Remove(c.Request.Context(), middleware.UserID(c), req.CourseID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed", "wishlist": items})
}
