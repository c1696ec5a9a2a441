package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactURI(t *testing.T) {
	cases := []struct {
		method, value, want string
	}{
		{"phone", "+380 50 123 4567", "tel:+380 50 123 4567"},
		{"whatsapp", "+380 (50) 123-4567", "https://wa.me/380501234567"},
		{"telegram", "@maria_k", "https://t.me/maria_k"},
		{"telegram", "maria_k", "https://t.me/maria_k"},
		{"viber", "+380501234567", "viber://chat?number=380501234567"},
		{"facebook", "maria.k", "https://m.me/maria.k"},
		{"signal", "+380501234567", ""},
		{"", "x", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ContactURI(c.method, c.value), "%s(%s)", c.method, c.value)
	}
}
