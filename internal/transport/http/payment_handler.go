package handlers

import (
	"net/http"
	"time"

	"coursehub/internal/application/usecase"
	"coursehub/internal/domain"
	"coursehub/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	log      *logger.Logger
	checkout *usecase.CheckoutUseCase
}

func NewPaymentHandler(log *logger.Logger, checkout *usecase.CheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{log: log.With("handler", "payment"), checkout: checkout}
}

type paymentCourseReq struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}

type paymentReq struct {
	UserID         string             `json:"userId" binding:"required"`
	Courses        []paymentCourseReq `json:"courses" binding:"required"`
	TotalAmount    *float64           `json:"totalAmount" binding:"required"`
	Status         string             `json:"status" binding:"required"`
	PaymentDate    time.Time          `json:"paymentDate" binding:"required"`
	IdempotencyKey string             `json:"idempotencyKey"`
}

// PaymentSuccess is called by the payment provider integration, which is
// trusted. Idempotency-Key header and body field are equivalent.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		badRequest(c, "Invalid userId")
		return
	}
	key := req.IdempotencyKey
	if key == "" {
		key = c.GetHeader("Idempotency-Key")
	}

	in := usecase.PaymentInput{
		UserID:         userID,
		TotalAmount:    *req.TotalAmount,
		Status:         domain.OrderStatus(req.Status),
		PaymentDate:    req.PaymentDate,
		IdempotencyKey: key,
	}
	for _, course := range req.Courses {
		in.Courses = append(in.Courses, usecase.PaymentCourse{
			CourseID: course.CourseID,
			Title:    course.Title,
			Price:    course.Price,
			Duration: course.Duration,
		})
	}

	order, created, err := h.checkout.RecordPayment(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"message": "Order and progress saved", "orderId": order.OrderID})
}

func (h *PaymentHandler) ListOrders(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	orders, err := h.checkout.ListOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *PaymentHandler) ListProgress(c *gin.Context) {
	userID, ok := userIDQuery(c)
	if !ok {
		return
	}
	progress, err := h.checkout.ListProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func userIDQuery(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("userId")
	if raw == "" {
		badRequest(c, "Missing userId")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "Invalid userId")
		return uuid.Nil, false
	}
	return id, true
}
