package apiclient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"nil", nil, ""},
		{"plain string", "  Not found  ", "Not found"},
		{"detail", map[string]any{"detail": "Authentication credentials were not provided."}, "Authentication credentials were not provided."},
		{"message", map[string]any{"message": "Group already exists"}, "Group already exists"},
		{"non field errors", map[string]any{"non_field_errors": []any{"Time overlaps", "Pair exists"}}, "Time overlaps, Pair exists"},
		{"error key", map[string]any{"error": "boom"}, "boom"},
		{"detail wins over fields", map[string]any{"detail": "d", "name": []any{"x"}}, "d"},
		{"empty detail falls through", map[string]any{"detail": "", "message": "m"}, "m"},
		{"field map sorted", map[string]any{
			"storeys": []any{"Ensure this value is greater than 0."},
			"name":    []any{"This field is required."},
		}, "name: This field is required.; storeys: Ensure this value is greater than 0."},
		{"nested field map", map[string]any{"building": map[string]any{"id": []any{"Invalid pk"}}}, "building: id: Invalid pk"},
		{"list body", []any{"first", "second"}, "first, second"},
		{"number", 42.0, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMessage(tt.body))
		})
	}
}

func TestAppErrorFieldErrors(t *testing.T) {
	e := newBackendError(400, map[string]any{
		"detail":  "Validation failed",
		"name":    []any{"This field is required."},
		"storeys": []any{"A valid integer is required."},
	}, "")
	assert.Equal(t, "Validation failed", e.Message)
	assert.Equal(t, map[string]string{
		"name":    "This field is required.",
		"storeys": "A valid integer is required.",
	}, e.FieldErrors())

	var nilErr *AppError
	assert.Empty(t, nilErr.FieldErrors())
	assert.Equal(t, "", nilErr.Error())
}

func TestBackendErrorFallbacks(t *testing.T) {
	assert.Equal(t, "gateway down", newBackendError(502, nil, "gateway down").Message)
	assert.Equal(t, "Bad Gateway", newBackendError(502, nil, "").Message)
	assert.Equal(t, "Bad Gateway", newBackendError(502, map[string]any{}, "").Message)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	e := newTransportError(cause)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "transport error: dial tcp: refused", e.Error())
	assert.Equal(t, "backend error (404): Not Found", newBackendError(404, nil, "").Error())
}
