package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	bk "github.com/daypass/daypass-backend/booking"
	"github.com/daypass/daypass-backend/catalog"
	"github.com/daypass/daypass-backend/identity"
	"github.com/daypass/daypass-backend/payment"
	"github.com/gin-gonic/gin"
)

type BookingService interface {
	CheckAvailability(ctx context.Context, propertyID, dayPassID string, date time.Time) (int, error)
	Reserve(ctx context.Context, propertyID, dayPassID string, guest bk.Guest, date time.Time, numberOfGuests int) (bk.Booking, error)
	Cancel(ctx context.Context, id, reason string) error
	ConfirmAfterPayment(ctx context.Context, id, paymentRef string) error
	MarkRefunded(ctx context.Context, id string) error
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsForUser(ctx context.Context, userID string) ([]bk.Booking, error)
}

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount float64, currency string, card payment.Card) (payment.Charge, error)
	ProcessRefund(ctx context.Context, paymentRef string) error
}

type BookingHandler struct {
	service  BookingService
	payments PaymentProcessor
}

func NewBookingHandler(service BookingService, payments PaymentProcessor) *BookingHandler {
	return &BookingHandler{service: service, payments: payments}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Reserve)
	rg.GET("/me", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.POST("/:id/pay", h.Pay)
	rg.POST("/:id/refund", h.Refund)
}

func (h *BookingHandler) RegisterAvailability(rg *gin.RouterGroup) {
	rg.GET("", h.CheckAvailability)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	propertyID := c.Query("propertyId")
	dayPassID := c.Query("dayPassId")

	if len(propertyID) == 0 || len(dayPassID) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "propertyId and dayPassId are required"})
		return
	}

	date, err := time.Parse(time.DateOnly, c.Query("date"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	remaining, err := h.service.CheckAvailability(c.Request.Context(), propertyID, dayPassID, date)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrPropertyNotFound) || errors.Is(err, catalog.ErrDayPassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "day pass not found"})
		} else if errors.Is(err, bk.ErrDayNotAvailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day pass not available on this day"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"availableSpots": remaining})
}

type reserveRequest struct {
	PropertyID      string `json:"propertyId" binding:"required"`
	DayPassOptionID string `json:"dayPassOptionId" binding:"required"`
	Date            string `json:"date" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required,gte=1"`
}

func (h *BookingHandler) Reserve(c *gin.Context) {
	session := c.MustGet("session").(identity.Session)

	var req reserveRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	guest := bk.Guest{UserID: session.UserID, Email: session.Email, Name: session.DisplayName}

	booking, err := h.service.Reserve(c.Request.Context(), req.PropertyID, req.DayPassOptionID, guest, date, req.NumberOfGuests)

	if err != nil {
		c.Error(err)
		if errors.Is(err, catalog.ErrPropertyNotFound) || errors.Is(err, catalog.ErrDayPassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "day pass not found"})
		} else if errors.Is(err, bk.ErrCapacityExceeded) {
			c.JSON(http.StatusConflict, gin.H{"error": "not enough spots left for this date"})
		} else if errors.Is(err, bk.ErrDuplicateBooking) {
			c.JSON(http.StatusConflict, gin.H{"error": "you already have a booking at this property for this date"})
		} else if errors.Is(err, bk.ErrDayNotAvailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day pass not available on this day"})
		} else if errors.Is(err, bk.ErrInvalidGuestCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "number of guests must be at least 1"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	session := c.MustGet("session").(identity.Session)

	bookings, err := h.service.FindBookingsForUser(c.Request.Context(), session.UserID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, ok := h.ownedBooking(c)

	if !ok {
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, ok := h.ownedBooking(c)

	if !ok {
		return
	}

	reason := c.Query("reason")

	err := h.service.Cancel(c.Request.Context(), booking.ID, reason)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking can no longer be cancelled"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) Pay(c *gin.Context) {
	booking, ok := h.ownedBooking(c)

	if !ok {
		return
	}

	var card payment.Card

	if err := c.BindJSON(&card); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	charge, err := h.payments.ProcessPayment(c.Request.Context(), booking.TotalPrice, booking.Currency, card)

	if err != nil {
		c.Error(err)
		if errors.Is(err, payment.ErrInvalidCard) || errors.Is(err, payment.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment was declined"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process payment"})
		}

		return
	}

	err = h.service.ConfirmAfterPayment(c.Request.Context(), booking.ID, charge.Reference)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking is not awaiting payment"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking confirmed", "paymentRef": charge.Reference})
}

func (h *BookingHandler) Refund(c *gin.Context) {
	booking, ok := h.ownedBooking(c)

	if !ok {
		return
	}

	err := h.payments.ProcessRefund(c.Request.Context(), booking.PaymentRef)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "refund was declined"})
		return
	}

	err = h.service.MarkRefunded(c.Request.Context(), booking.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking is not refundable"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refund booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking refunded"})
}

// ownedBooking loads the booking from the path id and enforces that the
// caller's session owns it.
func (h *BookingHandler) ownedBooking(c *gin.Context) (bk.Booking, bool) {
	session := c.MustGet("session").(identity.Session)
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		}

		return bk.Booking{}, false
	}

	if booking.UserID != session.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to access this booking"})
		return bk.Booking{}, false
	}

	return booking, true
}
