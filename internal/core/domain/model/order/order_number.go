package order

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"time"

	"logistics/internal/pkg/errs"
)

// Order numbers follow the same layout as tracking codes with their own
// prefix. Auto-generated when the caller does not supply one; uniqueness is
// enforced by the store.
const (
	orderNumberPrefix     = "ORD"
	orderNumberDateLayout = "20060102"
	orderNumberSuffixLen  = 6
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var orderNumberPattern = regexp.MustCompile(`^` + orderNumberPrefix + `\d{8}[A-Z0-9]{6}$`)

// ErrOrderNumberIsNotConstructed indicates a zero-value Number.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order Number must be created via NewNumber or NumberFromString",
)

// Number is the unique human-readable identifier of an order,
// e.g. "ORD20260831K2M9P4".
type Number struct {
	value string
}

// NewNumber generates a fresh order number for the given creation time.
func NewNumber(now time.Time) (Number, error) {
	suffix, err := randomSuffix(rand.Reader, orderNumberAlphabet, orderNumberSuffixLen)
	if err != nil {
		return Number{}, fmt.Errorf("order number entropy: %w", err)
	}

	return Number{
		value: orderNumberPrefix + now.Format(orderNumberDateLayout) + suffix,
	}, nil
}

// randomSuffix draws length characters uniformly from alphabet. Rejection
// sampling keeps the draw unbiased: 256 is not a multiple of the alphabet
// size, so a plain modulo would favor the alphabet's first characters.
func randomSuffix(src io.Reader, alphabet string, length int) (string, error) {
	limit := len(alphabet) * (256 / len(alphabet))
	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// NumberFromString reconstructs an order number from persistence or from a
// client-supplied value. Returns an error if the value does not match the layout.
func NumberFromString(s string) (Number, error) {
	if s == "" {
		return Number{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause(
			"orderNumber", fmt.Errorf("%q does not match the order number layout", s),
		)
	}
	return Number{value: s}, nil
}

// String returns the number's text form.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate checks that the number was properly constructed.
func (n Number) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
