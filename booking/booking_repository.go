package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const bookingColumns = `id, "propertyId", "propertyName", "dayPassOptionId", "dayPassName", "userId", "userEmail", "userName", date, "startTime", "endTime", "numberOfGuests", "totalPrice", currency, status, "paymentRef", "qrCodeUrl", "cancellationReason", "createdAt", COALESCE("updatedAt", "createdAt")`

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := fmt.Sprintf(`
			SELECT %v
			FROM daypass.booking
			WHERE id=$1;
		`, bookingColumns)

	rows, err := r.conn.Query(ctx, sql, id)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	booking, err := pgx.CollectOneRow(rows, scanBooking)

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsForUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := fmt.Sprintf(`
            SELECT %v
            FROM daypass.booking
            WHERE "userId"=$1
            ORDER BY date DESC, "createdAt" DESC;
        `, bookingColumns)

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	bookings, err := pgx.CollectRows(rows, scanBooking)

	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings for user '%v': %w", userID, err)
	}

	return bookings, nil
}

// SumActiveGuests is the capacity consumption signal: total guests across
// pending and confirmed bookings for a property/pass/calendar date.
func (r *Repository) SumActiveGuests(ctx context.Context, propertyID, dayPassID string, date time.Time) (int, error) {
	sql := `
            SELECT COALESCE(SUM("numberOfGuests"), 0)
            FROM daypass.booking
            WHERE "propertyId"=$1 AND "dayPassOptionId"=$2 AND date=$3
            AND status IN ('pending', 'confirmed');
        `

	var total int
	err := r.conn.QueryRow(ctx, sql, propertyID, dayPassID, DateOf(date)).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("failed to sum active guests: %w", err)
	}

	return total, nil
}

func (r *Repository) HasActiveBookingForUser(ctx context.Context, userID, propertyID string, date time.Time) (bool, error) {
	sql := `
            SELECT EXISTS(
                SELECT 1 FROM daypass.booking
                WHERE "userId"=$1 AND "propertyId"=$2 AND date=$3
                AND status IN ('pending', 'confirmed')
            );
        `

	var exists bool
	err := r.conn.QueryRow(ctx, sql, userID, propertyID, DateOf(date)).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check existing bookings: %w", err)
	}

	return exists, nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	booking.Status = StatusPending
	booking.Date = DateOf(booking.Date)

	sql := `
			INSERT INTO daypass.booking(
			id, "propertyId", "propertyName", "dayPassOptionId", "dayPassName", "userId", "userEmail", "userName", date, "startTime", "endTime", "numberOfGuests", "totalPrice", currency, status, "createdAt")
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING "createdAt";
		`

	err := r.conn.QueryRow(ctx, sql,
		booking.ID,
		booking.PropertyID,
		booking.PropertyName,
		booking.DayPassOptionID,
		booking.DayPassName,
		booking.UserID,
		booking.UserEmail,
		booking.UserName,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Currency,
		string(StatusPending),
		time.Now().UTC(),
	).Scan(&booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

// UpdateStatus applies a lifecycle transition. The allowed predecessor
// statuses are part of the WHERE clause so concurrent writers cannot
// double-apply a transition.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status, reason string) error {
	predecessors := statusPredecessors[status]

	if len(predecessors) == 0 {
		return ErrInvalidTransition
	}

	allowed := make([]string, 0, len(predecessors))

	for _, s := range predecessors {
		allowed = append(allowed, string(s))
	}

	sql := `
            UPDATE daypass.booking
            SET status=$1,
                "cancellationReason"=CASE WHEN $1='cancelled' THEN $2 ELSE "cancellationReason" END,
                "updatedAt"=now()
            WHERE id=$3 AND status = ANY($4);
        `

	tag, err := r.conn.Exec(ctx, sql, string(status), reason, id, allowed)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM daypass.booking WHERE id=$1);`, id).Scan(&exists)

		if err != nil {
			return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
		}

		if !exists {
			return ErrBookingNotFound
		}

		return ErrInvalidTransition
	}

	return nil
}

func (r *Repository) SetPaymentReference(ctx context.Context, id, paymentRef, qrCodeURL string) error {
	sql := `
            UPDATE daypass.booking
            SET "paymentRef"=$1, "qrCodeUrl"=$2, "updatedAt"=now()
            WHERE id=$3;
        `

	tag, err := r.conn.Exec(ctx, sql, paymentRef, qrCodeURL, id)

	if err != nil {
		return fmt.Errorf("failed to record payment reference for booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func scanBooking(row pgx.CollectableRow) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.PropertyID,
		&booking.PropertyName,
		&booking.DayPassOptionID,
		&booking.DayPassName,
		&booking.UserID,
		&booking.UserEmail,
		&booking.UserName,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.NumberOfGuests,
		&booking.TotalPrice,
		&booking.Currency,
		&booking.Status,
		&booking.PaymentRef,
		&booking.QRCodeURL,
		&booking.CancellationReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	return booking, err
}
