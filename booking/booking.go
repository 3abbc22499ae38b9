package booking

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// statusPredecessors lists which stored statuses a booking may move from
// when transitioning to the given status. Completed is never stored, it is
// derived from a confirmed booking whose date has passed.
var statusPredecessors = map[Status][]Status{
	StatusConfirmed: {StatusPending},
	StatusCancelled: {StatusPending, StatusConfirmed},
	StatusRefunded:  {StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, from := range statusPredecessors[next] {
		if from == s {
			return true
		}
	}

	return false
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

type Booking struct {
	ID                 string    `json:"id"`
	PropertyID         string    `json:"propertyId"`
	PropertyName       string    `json:"propertyName"`
	DayPassOptionID    string    `json:"dayPassOptionId"`
	DayPassName        string    `json:"dayPassName"`
	UserID             string    `json:"userId"`
	UserEmail          string    `json:"userEmail"`
	UserName           string    `json:"userName"`
	Date               time.Time `json:"date"`
	StartTime          string    `json:"startTime"`
	EndTime            string    `json:"endTime"`
	NumberOfGuests     int       `json:"numberOfGuests"`
	TotalPrice         float64   `json:"totalPrice"`
	Currency           string    `json:"currency"`
	Status             Status    `json:"status"`
	PaymentRef         string    `json:"paymentRef,omitempty"`
	QRCodeURL          string    `json:"qrCodeUrl,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt,omitempty"`
}

// Guest identifies the user a booking is made for. Supplied by the session
// layer, never read from client payloads.
type Guest struct {
	UserID string
	Email  string
	Name   string
}

// WithDerivedStatus reports confirmed bookings whose date has passed as
// completed. The stored status stays confirmed.
func (b Booking) WithDerivedStatus(now time.Time) Booking {
	if b.Status == StatusConfirmed && b.Date.Before(DateOf(now)) {
		b.Status = StatusCompleted
	}

	return b
}

// DateOf truncates a timestamp to its calendar day, midnight UTC.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
