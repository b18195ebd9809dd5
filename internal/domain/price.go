package domain

import "fmt"

// PriceMode tells whether an assignment price was computed or set by hand
type PriceMode string

const (
	PriceModeComputed PriceMode = "computed"
	PriceModeOverride PriceMode = "override"
)

// ParsePriceMode validates a stored or requested price mode
func ParsePriceMode(s string) (PriceMode, error) {
	switch PriceMode(s) {
	case PriceModeComputed, PriceModeOverride:
		return PriceMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPriceMode, s)
	}
}

// Price is either Computed or Override(amount)
// Amount always holds the total for the whole stay; for Computed it is filled by the calculator
type Price struct {
	Mode   PriceMode
	Amount int64
}

// ComputedPrice asks the calculator to price the stay
func ComputedPrice() Price {
	return Price{Mode: PriceModeComputed}
}

// OverridePrice fixes the total price of the stay
func OverridePrice(amount int64) Price {
	return Price{Mode: PriceModeOverride, Amount: amount}
}

// IsOverride reports whether the price was set explicitly
func (p Price) IsOverride() bool {
	return p.Mode == PriceModeOverride
}

// Validate checks the mode and that an override is positive
func (p Price) Validate() error {
	if _, err := ParsePriceMode(string(p.Mode)); err != nil {
		return err
	}
	if p.IsOverride() && p.Amount <= 0 {
		return ErrInvalidOverride
	}
	return nil
}
