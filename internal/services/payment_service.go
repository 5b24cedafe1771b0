package services

import (
	"fmt"
	"time"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Checkout collects a payment for amount. A nil error means the money was
// taken; any error means nothing was charged.
type Checkout interface {
	Charge(amount float64, purpose string) (*models.Receipt, error)
}

// CheckoutFunc adapts a function to the Checkout interface.
type CheckoutFunc func(amount float64, purpose string) (*models.Receipt, error)

func (f CheckoutFunc) Charge(amount float64, purpose string) (*models.Receipt, error) {
	return f(amount, purpose)
}

type PaymentRequest struct {
	Method  models.PaymentMethod `validate:"min=1,max=3" label:"payment method"`
	PIN     string               `validate:"required" label:"PIN"`
	Amount  float64              `validate:"gt=0" label:"amount"`
	Purpose string
}

// PaymentService simulates a card, bank or e-wallet gateway. Any payment
// with a well-formed PIN succeeds.
type PaymentService struct {
	log logrus.FieldLogger
}

func NewPaymentService(log logrus.FieldLogger) *PaymentService {
	return &PaymentService{log: log}
}

// ValidatePIN checks the PIN length rules of each payment method.
func ValidatePIN(method models.PaymentMethod, pin string) error {
	switch method {
	case models.PaymentCreditCard:
		if len(pin) != 12 {
			return NewBookingError("Credit Card PIN must be exactly 12 digits", ErrInvalidInput, nil)
		}
	case models.PaymentOnlineBanking:
		if len(pin) < 12 || len(pin) > 16 {
			return NewBookingError("Online Banking PIN must be 12 - 16 digits", ErrInvalidInput, nil)
		}
	case models.PaymentEWallet:
		if len(pin) != 6 {
			return NewBookingError("E-Wallet (TNG) PIN must be exactly 6 digits", ErrInvalidInput, nil)
		}
	default:
		return NewBookingError("Invalid payment method", ErrInvalidInput, nil)
	}
	return nil
}

func (s *PaymentService) Pay(req PaymentRequest) (*models.Receipt, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, NewBookingError(err.Error(), ErrInvalidInput, nil)
	}
	if err := ValidatePIN(req.Method, req.PIN); err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		Reference: uuid.New().String(),
		Method:    req.Method,
		Amount:    req.Amount,
		Success:   true,
		PaidAt:    time.Now(),
	}

	s.log.WithFields(logrus.Fields{
		"reference": receipt.Reference,
		"method":    receipt.Method.String(),
		"amount":    fmt.Sprintf("%.2f", receipt.Amount),
		"purpose":   req.Purpose,
	}).Info("Payment processed")

	return receipt, nil
}
