package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/daypass/daypass-backend/catalog"
)

type BookingLedger interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsForUser(ctx context.Context, userID string) ([]Booking, error)
	SumActiveGuests(ctx context.Context, propertyID, dayPassID string, date time.Time) (int, error)
	HasActiveBookingForUser(ctx context.Context, userID, propertyID string, date time.Time) (bool, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status, reason string) error
	SetPaymentReference(ctx context.Context, id, paymentRef, qrCodeURL string) error
}

type PropertyCatalog interface {
	FindProperty(ctx context.Context, id string) (catalog.Property, error)
	GetDayPassOption(ctx context.Context, propertyID, dayPassID string) (catalog.DayPassOption, error)
}

const bookingBaseURL = "https://daypass.app/booking/"

type Service struct {
	ledger  BookingLedger
	catalog PropertyCatalog
	locks   keyedMutex
}

func NewService(ledger BookingLedger, catalog PropertyCatalog) *Service {
	return &Service{ledger: ledger, catalog: catalog}
}

// CheckAvailability returns the remaining spots for a day pass on a given
// calendar date. The result can go negative when concurrent reservations
// overbooked a date; callers should treat anything <= 0 as sold out.
func (s *Service) CheckAvailability(ctx context.Context, propertyID, dayPassID string, date time.Time) (int, error) {
	pass, err := s.catalog.GetDayPassOption(ctx, propertyID, dayPassID)

	if err != nil {
		return 0, err
	}

	return s.remainingSpots(ctx, pass, date)
}

func (s *Service) remainingSpots(ctx context.Context, pass catalog.DayPassOption, date time.Time) (int, error) {
	if !pass.AvailableOn(DateOf(date).Weekday()) {
		return 0, ErrDayNotAvailable
	}

	booked, err := s.ledger.SumActiveGuests(ctx, pass.PropertyID, pass.ID, date)

	if err != nil {
		return 0, err
	}

	return pass.MaxCapacity - booked, nil
}

// Reserve re-validates availability and creates a pending booking.
// Reservations for the same property/pass/date are serialized on an
// in-process lock so two concurrent calls cannot both pass the capacity
// check. Instances sharing one database still race across processes; the
// guarded status update in the ledger is the backstop there.
func (s *Service) Reserve(ctx context.Context, propertyID, dayPassID string, guest Guest, date time.Time, numberOfGuests int) (Booking, error) {
	if numberOfGuests < 1 {
		return Booking{}, ErrInvalidGuestCount
	}

	property, err := s.catalog.FindProperty(ctx, propertyID)

	if err != nil {
		return Booking{}, err
	}

	pass, found := property.DayPassOption(dayPassID)

	if !found || !pass.IsActive {
		return Booking{}, catalog.ErrDayPassNotFound
	}

	date = DateOf(date)

	unlock := s.locks.lock(reservationKey(propertyID, dayPassID, date))
	defer unlock()

	remaining, err := s.remainingSpots(ctx, pass, date)

	if err != nil {
		return Booking{}, err
	}

	if numberOfGuests > remaining {
		return Booking{}, ErrCapacityExceeded
	}

	duplicate, err := s.ledger.HasActiveBookingForUser(ctx, guest.UserID, propertyID, date)

	if err != nil {
		return Booking{}, err
	}

	if duplicate {
		return Booking{}, ErrDuplicateBooking
	}

	booking := Booking{
		PropertyID:      propertyID,
		PropertyName:    property.Name,
		DayPassOptionID: pass.ID,
		DayPassName:     pass.Name,
		UserID:          guest.UserID,
		UserEmail:       guest.Email,
		UserName:        guest.Name,
		Date:            date,
		StartTime:       pass.StartTime,
		EndTime:         pass.EndTime,
		NumberOfGuests:  numberOfGuests,
		TotalPrice:      pass.Price * float64(numberOfGuests),
		Currency:        pass.Currency,
		Status:          StatusPending,
	}

	return s.ledger.InsertBooking(ctx, booking)
}

// Cancel is the self-service path: only future pending or confirmed
// bookings may be cancelled through it.
func (s *Service) Cancel(ctx context.Context, id, reason string) error {
	booking, err := s.ledger.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !booking.Status.IsActive() {
		return ErrInvalidTransition
	}

	if !booking.Date.After(DateOf(time.Now())) {
		return ErrInvalidTransition
	}

	err = s.ledger.UpdateStatus(ctx, id, StatusCancelled, reason)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

// ConfirmAfterPayment is invoked by the payment collaborator once a charge
// succeeded. It records the payment reference and the booking's QR code URL.
func (s *Service) ConfirmAfterPayment(ctx context.Context, id, paymentRef string) error {
	booking, err := s.ledger.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusPending {
		return ErrInvalidTransition
	}

	err = s.ledger.UpdateStatus(ctx, id, StatusConfirmed, "")

	if err != nil {
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	return s.ledger.SetPaymentReference(ctx, id, paymentRef, bookingBaseURL+id)
}

// MarkRefunded moves a cancelled, paid booking to refunded once the payment
// collaborator returned the charge.
func (s *Service) MarkRefunded(ctx context.Context, id string) error {
	booking, err := s.ledger.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusCancelled || booking.PaymentRef == "" {
		return ErrInvalidTransition
	}

	return s.ledger.UpdateStatus(ctx, id, StatusRefunded, "")
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	booking, err := s.ledger.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	return booking.WithDerivedStatus(time.Now()), nil
}

func (s *Service) FindBookingsForUser(ctx context.Context, userID string) ([]Booking, error) {
	bookings, err := s.ledger.GetBookingsForUser(ctx, userID)

	if err != nil {
		return nil, err
	}

	now := time.Now()

	for i := range bookings {
		bookings[i] = bookings[i].WithDerivedStatus(now)
	}

	return bookings, nil
}

func reservationKey(propertyID, dayPassID string, date time.Time) string {
	return propertyID + "|" + dayPassID + "|" + date.Format(time.DateOnly)
}

// keyedMutex serializes callers holding the same key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()

	if k.locks == nil {
		k.locks = map[string]*lockEntry{}
	}

	entry, ok := k.locks[key]

	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}

	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		entry.refs--

		if entry.refs == 0 {
			delete(k.locks, key)
		}

		k.mu.Unlock()
	}
}
