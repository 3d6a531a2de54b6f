package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"healthshop/internal/model"
	"healthshop/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentIntentRequest carries the amount to charge in major units.
type PaymentIntentRequest struct {
	Price decimal.NullDecimal `json:"price" swaggertype:"number"`
}

// PaymentIntentResponse carries the provider client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest is the transaction the client submits after confirming payment.
type RecordPaymentRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"gte=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	Date          string   `json:"date"`
	CartIDs       []string `json:"cartIds"`
	MedicineIDs   []string `json:"medicineIds"`
	Status        string   `json:"status" validate:"omitempty,oneof=pending paid"`
}

// CreatePaymentIntent godoc
// @Summary Create a card payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentIntentRequest true "Amount"
// @Success 200 {object} PaymentIntentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}

	secret, err := h.paymentService.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: secret})
}

// RecordPayment godoc
// @Summary Record a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment record"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidInput(err)
	}

	payment, err := h.paymentService.Record(c.Request().Context(), &model.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		CartIDs:       req.CartIDs,
		MedicineIDs:   req.MedicineIDs,
		Status:        model.PaymentStatus(req.Status),
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, payment)
}
