// Package auth implements the shared-PIN check that gates settlement
// confirmation. This is a low-stakes household control, not a security
// boundary: the PIN is a single static secret shared by both parties.
package auth

import (
	"errors"

	"github.com/kpalanivelraj/nekipay/internal/validate"
)

// ErrInvalidPIN is returned on a PIN mismatch. The message is generic
// on purpose; it never reveals the stored value.
var ErrInvalidPIN = errors.New("invalid PIN")

// Verifier checks caller-supplied PINs against the configured secret.
type Verifier struct {
	pin string
}

// NewVerifier creates a verifier for the configured PIN. The PIN is
// injected from configuration so it can be rotated without a rebuild.
func NewVerifier(pin string) *Verifier {
	return &Verifier{pin: pin}
}

// Verify checks the supplied PIN. Format problems come back as a
// validation error listing every violation; a well-formed but wrong PIN
// comes back as ErrInvalidPIN.
//
// TODO: compare against a hashed PIN and rate-limit attempts if this
// ever guards more than the household ledger.
func (v *Verifier) Verify(pin string) error {
	if violations := validate.PIN(pin); len(violations) > 0 {
		return &validate.Error{Violations: violations}
	}
	if pin != v.pin {
		return ErrInvalidPIN
	}
	return nil
}
