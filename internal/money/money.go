// Package money provides the fixed-point currency representation used
// throughout the drawer. Amounts are held as integer cents so equality
// comparisons (reconciliation in particular) are exact.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the single currency the drawer operates in.
const currencyCode = gomoney.BRL

// Amount is an immutable monetary value in cents.
type Amount struct {
	cents int64
}

// Zero is the zero amount.
var Zero = Amount{}

// FromCents creates an Amount from an integer number of cents.
func FromCents(cents int64) Amount {
	return Amount{cents: cents}
}

// Parse converts a user-entered decimal string into an Amount. Both the
// pt-BR comma decimal separator ("1.234,56") and a plain dot ("1234.56")
// are accepted; an optional "R$" prefix is stripped. Sub-cent precision is
// rejected rather than rounded, so a typo cannot silently change the
// amount. Negative values parse successfully and are rejected by the
// caller's validation where required.
func Parse(s string) (Amount, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "R$")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Amount{}, fmt.Errorf("empty amount")
	}

	if strings.Contains(raw, ",") {
		// pt-BR notation: dots are thousand separators.
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.Replace(raw, ",", ".", 1)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.Equal(d.Truncate(2)) {
		return Amount{}, fmt.Errorf("amount %q has more than 2 decimal places", s)
	}

	return Amount{cents: d.Shift(2).IntPart()}, nil
}

// Cents returns the value in integer cents.
func (a Amount) Cents() int64 { return a.cents }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return Amount{cents: a.cents + b.cents} }

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount { return Amount{cents: a.cents - b.cents} }

// Neg returns -a.
func (a Amount) Neg() Amount { return Amount{cents: -a.cents} }

// Cmp compares a and b, returning -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.cents < b.cents:
		return -1
	case a.cents > b.cents:
		return 1
	default:
		return 0
	}
}

func (a Amount) Equal(b Amount) bool       { return a.cents == b.cents }
func (a Amount) GreaterThan(b Amount) bool { return a.cents > b.cents }
func (a Amount) LessThan(b Amount) bool    { return a.cents < b.cents }
func (a Amount) IsZero() bool              { return a.cents == 0 }
func (a Amount) IsPositive() bool          { return a.cents > 0 }
func (a Amount) IsNegative() bool          { return a.cents < 0 }

// String renders the amount in the reference locale, e.g. "R$1.234,56".
// The same rule is used for drawer display and reports.
func (a Amount) String() string {
	return gomoney.New(a.cents, currencyCode).Display()
}

// decimalString is the canonical 2-decimal dot representation ("155.00")
// used for serialization.
func (a Amount) decimalString() string {
	return decimal.NewFromInt(a.cents).Shift(-2).StringFixed(2)
}

// MarshalJSON encodes the amount as a plain 2-decimal string so exported
// reports are deterministic and locale-independent.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.decimalString() + `"`), nil
}

// UnmarshalJSON decodes amounts written by MarshalJSON.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
