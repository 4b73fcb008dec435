package cart

import (
	"errors"
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentNone         PaymentMethod = ""
	PaymentQRIS         PaymentMethod = "qris"
	PaymentChargeToRoom PaymentMethod = "charge-to-room"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

type PaymentOption struct {
	Method PaymentMethod
	Label  string
}

var paymentOptions = []PaymentOption{
	{Method: PaymentQRIS, Label: "QRIS"},
	{Method: PaymentChargeToRoom, Label: "Charge to Room"},
}

// PaymentMethods lists the selectable methods in display order.
func PaymentMethods() []PaymentOption {
	out := make([]PaymentOption, len(paymentOptions))
	copy(out, paymentOptions)
	return out
}

func (m PaymentMethod) Valid() bool {
	for _, o := range paymentOptions {
		if o.Method == m {
			return true
		}
	}
	return false
}

func (m PaymentMethod) Label() string {
	for _, o := range paymentOptions {
		if o.Method == m {
			return o.Label
		}
	}
	return ""
}

// ParsePaymentMethod accepts a method value case-insensitively. The empty
// string clears the selection.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == PaymentNone || m.Valid() {
		return m, nil
	}
	return PaymentNone, fmt.Errorf("%q: %w", s, ErrUnknownPaymentMethod)
}
