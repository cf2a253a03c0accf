package plates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB123", Normalize("ab 12-3"))
	assert.Equal(t, "AB123", Normalize("ab-123!"))
	assert.Equal(t, "KGF782", Normalize("kgf782"))
	assert.Equal(t, "", Normalize("!@# $%"))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"ab 12-3", "KGF782", "a!b@c#1", ""} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Normalize("ab-123!")))
	assert.True(t, Valid("ABC"))
	assert.True(t, Valid("ABC123"))

	assert.False(t, Valid("AB"))        // too short
	assert.False(t, Valid("ABC1234"))   // too long
	assert.False(t, Valid("ab123"))     // not normalized
	assert.False(t, Valid(""))
}
