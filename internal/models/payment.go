package models

import (
	"fmt"
	"time"
)

type PaymentMethod int

const (
	PaymentCreditCard PaymentMethod = iota + 1
	PaymentOnlineBanking
	PaymentEWallet
)

// PaymentMethods lists the methods in menu order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentOnlineBanking, PaymentEWallet}
}

func (m PaymentMethod) String() string {
	switch m {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentOnlineBanking:
		return "Online Banking"
	case PaymentEWallet:
		return "E-Wallet (TNG)"
	default:
		return "Unknown"
	}
}

type Receipt struct {
	Reference string        `json:"reference"`
	Method    PaymentMethod `json:"method"`
	Amount    float64       `json:"amount"`
	Success   bool          `json:"success"`
	PaidAt    time.Time     `json:"paid_at"`
}

// FeeBreakdown itemizes an event's total fee.
type FeeBreakdown struct {
	ReceiptNo       string
	VenueCost       float64
	ParticipantCost float64
	ThemeCost       float64
	Total           float64
}

// BreakdownFor rebuilds the fee components from the event's current fields.
func BreakdownFor(e *Event) FeeBreakdown {
	venue := float64(VenueCost(e.Location))
	participants := float64(e.ExpectedParticipants * ParticipantRate)
	return FeeBreakdown{
		ReceiptNo:       fmt.Sprintf("R%d2025", e.ID),
		VenueCost:       venue,
		ParticipantCost: participants,
		ThemeCost:       e.ThemeCost,
		Total:           venue + participants + e.ThemeCost,
	}
}
