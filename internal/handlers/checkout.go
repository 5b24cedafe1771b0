package handlers

import (
	"errors"
	"fmt"
	"io"

	"event-booking-terminal/internal/models"
	"event-booking-terminal/internal/services"
	"event-booking-terminal/internal/utils"
)

// TerminalCheckout asks the operator for a payment method and PIN and
// charges through the payment service.
type TerminalCheckout struct {
	prompt  *Prompter
	payment *services.PaymentService
	out     io.Writer
}

func NewTerminalCheckout(prompt *Prompter, payment *services.PaymentService, out io.Writer) *TerminalCheckout {
	return &TerminalCheckout{prompt: prompt, payment: payment, out: out}
}

// Charge returns ErrCancelled when the operator backs out at any prompt.
func (c *TerminalCheckout) Charge(amount float64, purpose string) (*models.Receipt, error) {
	utils.Heading(c.out, "payment")
	fmt.Fprintf(c.out, "%s: %s\n", purpose, utils.Money(amount))
	for i, m := range models.PaymentMethods() {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, m)
	}

	choice, err := c.prompt.Int("Select payment method (0 to cancel): ", 1, len(models.PaymentMethods()))
	if err != nil {
		return nil, err
	}
	method := models.PaymentMethods()[choice-1]

	pin, err := c.prompt.Validated(fmt.Sprintf("Enter %s PIN (0 to cancel): ", method), func(s string) error {
		if err := services.ValidatePIN(method, s); err != nil {
			return errors.New(services.ErrorMessage(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	receipt, err := c.payment.Pay(services.PaymentRequest{
		Method:  method,
		PIN:     pin,
		Amount:  amount,
		Purpose: purpose,
	})
	if err != nil {
		return nil, err
	}

	utils.Success(c.out, "Payment successful!")
	return receipt, nil
}
