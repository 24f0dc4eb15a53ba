package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpalanivelraj/nekipay/internal/validate"
)

func TestVerify(t *testing.T) {
	v := NewVerifier("123456")

	assert.NoError(t, v.Verify("123456"))

	err := v.Verify("654321")
	assert.ErrorIs(t, err, ErrInvalidPIN)

	// Malformed PINs fail validation before comparison.
	var verr *validate.Error
	assert.ErrorAs(t, v.Verify("12"), &verr)
	assert.ErrorAs(t, v.Verify("abcdef"), &verr)
	assert.ErrorAs(t, v.Verify(""), &verr)
}

func TestVerify_ErrorDoesNotLeakSecret(t *testing.T) {
	v := NewVerifier("987654")
	err := v.Verify("123456")

	assert.Error(t, err)
	assert.NotContains(t, err.Error(), "987654")
}
