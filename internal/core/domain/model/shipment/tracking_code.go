package shipment

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"time"

	"logistics/internal/pkg/errs"
)

// Tracking code layout: fixed prefix, day-granular date, random suffix.
// The date component keeps codes roughly sortable by creation day while the
// suffix carries the entropy. Uniqueness is a store constraint, not a
// generator guarantee; callers retry generation on a constraint conflict.
const (
	trackingCodePrefix    = "TRK"
	trackingCodeDateLayout = "20060102"
	trackingCodeSuffixLen  = 6
)

const trackingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var trackingCodePattern = regexp.MustCompile(`^` + trackingCodePrefix + `\d{8}[A-Z0-9]{6}$`)

// ErrTrackingCodeIsNotConstructed indicates a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode or TrackingCodeFromString",
)

// TrackingCode is the unique, immutable, human-readable identifier of a
// shipment, e.g. "TRK20260831X7Q4R2".
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a fresh tracking code for the given creation time.
// The suffix is drawn from a cryptographic source so collision probability is
// negligible at expected volumes; the store's unique constraint remains the
// hard guarantee.
func NewTrackingCode(now time.Time) (TrackingCode, error) {
	suffix, err := randomSuffix(rand.Reader, trackingCodeAlphabet, trackingCodeSuffixLen)
	if err != nil {
		return TrackingCode{}, fmt.Errorf("tracking code entropy: %w", err)
	}

	return TrackingCode{
		value: trackingCodePrefix + now.Format(trackingCodeDateLayout) + suffix,
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

// TrackingCodeFromString reconstructs a tracking code from persistence or
// caller input. Returns an error if the value does not match the code layout.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !trackingCodePattern.MatchString(s) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingCode", fmt.Errorf("%q does not match the tracking code layout", s),
		)
	}
	return TrackingCode{value: s}, nil
}

// String returns the code's text form.
func (t TrackingCode) String() string {
	return t.value
}

// IsEqual compares two tracking codes for equality.
func (t TrackingCode) IsEqual(other TrackingCode) bool {
	return t.value == other.value
}

// Validate checks that the code was properly constructed.
func (t TrackingCode) Validate() error {
	if t.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
