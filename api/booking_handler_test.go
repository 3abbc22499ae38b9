package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daypass/daypass-backend/api"
	mock_api "github.com/daypass/daypass-backend/api/mocks"
	bk "github.com/daypass/daypass-backend/booking"
	"github.com/daypass/daypass-backend/catalog"
	"github.com/daypass/daypass-backend/identity"
	id_mocks "github.com/daypass/daypass-backend/identity/mocks"
	"github.com/daypass/daypass-backend/payment"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var session = identity.Session{UserID: "user-1", Email: "user1@example.com", DisplayName: "User One"}

var sunday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func setSessionInContext(session identity.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", session)
		c.Next()
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService, *mock_api.MockPaymentProcessor) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	mockPayments := mock_api.NewMockPaymentProcessor(ctrl)
	handler := api.NewBookingHandler(mockService, mockPayments)

	rg := router.Group("/api/v1/bookings")
	rg.Use(setSessionInContext(session))
	handler.Register(rg)
	handler.RegisterAvailability(router.Group("/api/v1/availability"))

	return router, ctrl, mockService, mockPayments
}

func TestCheckAvailability(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CheckAvailability(gomock.Any(), "prop-1", "pass-a", sunday).Return(3, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?propertyId=prop-1&dayPassId=pass-a&date=2025-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"availableSpots": 3}`, w.Body.String())
	})

	t.Run("missing params", func(t *testing.T) {
		router, ctrl, _, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?date=2025-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, _, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?propertyId=prop-1&dayPassId=pass-a&date=junk", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("pass not found", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CheckAvailability(gomock.Any(), "prop-1", "missing", sunday).Return(0, catalog.ErrDayPassNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?propertyId=prop-1&dayPassId=missing&date=2025-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("day not available", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().CheckAvailability(gomock.Any(), "prop-1", "pass-a", sunday).Return(0, bk.ErrDayNotAvailable).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/availability?propertyId=prop-1&dayPassId=pass-a&date=2025-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestReserve(t *testing.T) {
	reserveBody := map[string]any{
		"propertyId":      "prop-1",
		"dayPassOptionId": "pass-a",
		"date":            "2025-06-01",
		"numberOfGuests":  3,
	}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		created := bk.Booking{ID: "booking-1", UserID: "user-1", Status: bk.StatusPending, NumberOfGuests: 3}
		createdJson, _ := json.Marshal(created)

		guest := bk.Guest{UserID: "user-1", Email: "user1@example.com", Name: "User One"}
		mockService.EXPECT().Reserve(gomock.Any(), "prop-1", "pass-a", guest, sunday, 3).Return(created, nil).Times(1)

		body, _ := json.Marshal(reserveBody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(createdJson), w.Body.String())
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrCapacityExceeded).Times(1)

		body, _ := json.Marshal(reserveBody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"not enough spots left for this date"}`, w.Body.String())
	})

	t.Run("duplicate booking", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bk.Booking{}, bk.ErrDuplicateBooking).Times(1)

		body, _ := json.Marshal(reserveBody)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})

	t.Run("zero guests rejected by binding", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		invalid := map[string]any{
			"propertyId":      "prop-1",
			"dayPassOptionId": "pass-a",
			"date":            "2025-06-01",
			"numberOfGuests":  0,
		}
		body, _ := json.Marshal(invalid)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		invalid := map[string]any{
			"propertyId":      "prop-1",
			"dayPassOptionId": "pass-a",
			"date":            "junk",
			"numberOfGuests":  2,
		}
		body, _ := json.Marshal(invalid)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})
}

func TestListMine(t *testing.T) {
	router, ctrl, mockService, _ := setupRouter(t)
	defer ctrl.Finish()

	bookings := []bk.Booking{{ID: "1", UserID: "user-1"}, {ID: "2", UserID: "user-1"}}
	bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
	mockService.EXPECT().FindBookingsForUser(gomock.Any(), "user-1").Return(bookings, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/bookings/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(bookingsJson), w.Body.String())
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", UserID: "user-1"}
		bJson, _ := json.MarshalIndent(b, "", "    ")
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})

	t.Run("someone else's booking", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", UserID: "someone-else"}
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestCancel(t *testing.T) {
	owned := bk.Booking{ID: "123", UserID: "user-1", Status: bk.StatusPending}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockService.EXPECT().Cancel(gomock.Any(), "123", "change of plans").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/cancel?reason=change+of+plans", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking cancelled"}`, w.Body.String())
	})

	t.Run("invalid state", func(t *testing.T) {
		router, ctrl, mockService, _ := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockService.EXPECT().Cancel(gomock.Any(), "123", "").Return(bk.ErrInvalidTransition).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/cancel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"booking can no longer be cancelled"}`, w.Body.String())
	})
}

func TestPay(t *testing.T) {
	owned := bk.Booking{ID: "123", UserID: "user-1", Status: bk.StatusPending, TotalPrice: 135, Currency: "USD"}

	card := payment.Card{Number: "4242424242424242", HolderName: "User One", Expiry: "12/30", CVV: "123"}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, mockPayments := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockPayments.EXPECT().ProcessPayment(gomock.Any(), 135.0, "USD", card).
			Return(payment.Charge{Reference: "PAY-1A2B3C4D", Amount: 135, Currency: "USD"}, nil).Times(1)
		mockService.EXPECT().ConfirmAfterPayment(gomock.Any(), "123", "PAY-1A2B3C4D").Return(nil).Times(1)

		body, _ := json.Marshal(card)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/pay", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking confirmed","paymentRef":"PAY-1A2B3C4D"}`, w.Body.String())
	})

	t.Run("card declined", func(t *testing.T) {
		router, ctrl, mockService, mockPayments := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockPayments.EXPECT().ProcessPayment(gomock.Any(), 135.0, "USD", gomock.Any()).
			Return(payment.Charge{}, payment.ErrInvalidCard).Times(1)
		mockService.EXPECT().ConfirmAfterPayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		body, _ := json.Marshal(card)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/pay", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"payment was declined"}`, w.Body.String())
	})

	t.Run("already confirmed", func(t *testing.T) {
		router, ctrl, mockService, mockPayments := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockPayments.EXPECT().ProcessPayment(gomock.Any(), 135.0, "USD", gomock.Any()).
			Return(payment.Charge{Reference: "PAY-1A2B3C4D"}, nil).Times(1)
		mockService.EXPECT().ConfirmAfterPayment(gomock.Any(), "123", "PAY-1A2B3C4D").Return(bk.ErrInvalidTransition).Times(1)

		body, _ := json.Marshal(card)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/pay", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"booking is not awaiting payment"}`, w.Body.String())
	})
}

func TestRefund(t *testing.T) {
	owned := bk.Booking{ID: "123", UserID: "user-1", Status: bk.StatusCancelled, PaymentRef: "PAY-1A2B3C4D"}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService, mockPayments := setupRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(owned, nil).Times(1)
		mockPayments.EXPECT().ProcessRefund(gomock.Any(), "PAY-1A2B3C4D").Return(nil).Times(1)
		mockService.EXPECT().MarkRefunded(gomock.Any(), "123").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/refund", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking refunded"}`, w.Body.String())
	})

	t.Run("unpaid booking", func(t *testing.T) {
		router, ctrl, mockService, mockPayments := setupRouter(t)
		defer ctrl.Finish()

		unpaid := bk.Booking{ID: "123", UserID: "user-1", Status: bk.StatusCancelled}
		mockService.EXPECT().FindBookingByID(gomock.Any(), "123").Return(unpaid, nil).Times(1)
		mockPayments.EXPECT().ProcessRefund(gomock.Any(), "").Return(payment.ErrUnknownPayment).Times(1)
		mockService.EXPECT().MarkRefunded(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/refund", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"refund was declined"}`, w.Body.String())
	})
}

func TestSessionAuth(t *testing.T) {
	newAuthRouter := func(t *testing.T) (*gin.Engine, *gomock.Controller, *id_mocks.MockProvider) {
		t.Helper()
		ctrl := gomock.NewController(t)

		gin.SetMode(gin.TestMode)
		router := gin.Default()
		provider := id_mocks.NewMockProvider(ctrl)

		router.GET("/protected", api.SessionAuth(provider), func(c *gin.Context) {
			s := c.MustGet("session").(identity.Session)
			c.JSON(http.StatusOK, gin.H{"userId": s.UserID})
		})

		return router, ctrl, provider
	}

	t.Run("valid token", func(t *testing.T) {
		router, ctrl, provider := newAuthRouter(t)
		defer ctrl.Finish()

		provider.EXPECT().VerifySession(gomock.Any(), "token-1").Return(&session, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"userId":"user-1"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router, ctrl, provider := newAuthRouter(t)
		defer ctrl.Finish()

		provider.EXPECT().VerifySession(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		router, ctrl, provider := newAuthRouter(t)
		defer ctrl.Finish()

		provider.EXPECT().VerifySession(gomock.Any(), "bad-token").Return(nil, identity.ErrInvalidSession).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})
}
