package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenFrom(t *testing.T) {
	cases := []struct {
		name string
		body map[string]any
		want string
	}{
		{"token", map[string]any{"token": " abc "}, "abc"},
		{"access wins over key", map[string]any{"access": "a1", "key": "k1"}, "a1"},
		{"drf authtoken", map[string]any{"key": "k1"}, "k1"},
		{"nested data", map[string]any{"data": map[string]any{"access_token": "x"}}, "x"},
		{"blank skipped", map[string]any{"token": "  ", "key": "k"}, "k"},
		{"nothing", map[string]any{"detail": "ok"}, ""},
		{"nil body", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TokenFrom(tc.body))
		})
	}
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/", SafeNext(""))
	assert.Equal(t, "/", SafeNext("https://evil.example"))
	assert.Equal(t, "/", SafeNext("//evil.example"))
	assert.Equal(t, "/", SafeNext("/login?next=/x"))
	assert.Equal(t, "/rooms?page=2", SafeNext("/rooms?page=2"))
}

func TestNormalizeAndPayload(t *testing.T) {
	r := LoginRequest{Username: "  admin ", Password: " pw ", Role: " teacher"}
	r.Normalize()
	assert.Equal(t, LoginPayload{Username: "admin", Password: " pw ", Role: "teacher"}, r.Payload())
}
