package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Manali Adventure Escape", "manali-adventure-escape"},
		{"  Leh & Ladakh: 8 Days!  ", "leh-ladakh-8-days"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "919816012345", Digits("+91 98160-12345"))
	assert.Equal(t, "", Digits("n/a"))
}

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hashed)
	assert.True(t, CheckPassword(hashed, "secret"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func TestUUIDint64Unique(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		id := UUIDint64()
		assert.Positive(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
