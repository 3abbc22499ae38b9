package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Simulated payment gateway. No payment network is contacted; a charge that
// passes card validation always succeeds and yields a fabricated reference.

var ErrInvalidCard = errors.New("invalid card details")

var ErrInvalidAmount = errors.New("charge amount must be positive")

var ErrUnknownPayment = errors.New("unknown payment reference")

type Card struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	Expiry     string `json:"expiry"` // "MM/YY"
	CVV        string `json:"cvv"`
}

type Charge struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) ProcessPayment(ctx context.Context, amount float64, currency string, card Card) (Charge, error) {
	if amount <= 0 {
		return Charge{}, ErrInvalidAmount
	}

	if err := s.validateCard(card); err != nil {
		return Charge{}, err
	}

	reference := "PAY-" + strings.ToUpper(uuid.NewString()[:8])

	return Charge{Reference: reference, Amount: amount, Currency: currency}, nil
}

func (s *Service) ProcessRefund(ctx context.Context, paymentRef string) error {
	if len(strings.TrimSpace(paymentRef)) == 0 {
		return ErrUnknownPayment
	}

	return nil
}

func (s *Service) validateCard(card Card) error {
	number := strings.ReplaceAll(card.Number, " ", "")

	if len(number) < 13 || len(number) > 19 || !luhnValid(number) {
		return ErrInvalidCard
	}

	if len(strings.TrimSpace(card.HolderName)) == 0 {
		return ErrInvalidCard
	}

	if len(card.CVV) < 3 || len(card.CVV) > 4 || !digitsOnly(card.CVV) {
		return ErrInvalidCard
	}

	expiry, err := time.Parse("01/06", card.Expiry)

	if err != nil {
		return fmt.Errorf("%w: bad expiry date", ErrInvalidCard)
	}

	// Card is valid through the end of its expiry month.
	endOfMonth := expiry.AddDate(0, 1, 0)

	if !s.now().Before(endOfMonth) {
		return fmt.Errorf("%w: card expired", ErrInvalidCard)
	}

	return nil
}

func luhnValid(number string) bool {
	if !digitsOnly(number) {
		return false
	}

	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2

			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(s) != 0
}
