package apiclient

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind tells where a failure came from.
type Kind int

const (
	KindTransport Kind = iota + 1 // request never got a response
	KindBackend                   // backend answered with a non-2xx status
	KindShape                     // response arrived but payload is not what the caller expects
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBackend:
		return "backend"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// AppError is the single error shape every page sees. Message is already human readable;
// Raw keeps the decoded backend body (or nil) for callers that need field-level details.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	Raw     any
	Cause   error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// FieldErrors returns per-field messages when the backend sent a DRF-style field map.
func (e *AppError) FieldErrors() map[string]string {
	out := map[string]string{}
	if e == nil {
		return out
	}
	m, ok := e.Raw.(map[string]any)
	if !ok {
		return out
	}
	for k, v := range m {
		if isGeneralKey(k) {
			continue
		}
		if s := flatten(v); s != "" {
			out[k] = s
		}
	}
	return out
}

// NewShapeError is used by list controllers when a successful payload does not match.
func NewShapeError(format string, args ...any) *AppError {
	return &AppError{Kind: KindShape, Message: fmt.Sprintf(format, args...)}
}

func newTransportError(err error) *AppError {
	return &AppError{Kind: KindTransport, Message: err.Error(), Cause: err}
}

func newBackendError(status int, raw any, rawText string) *AppError {
	msg := ExtractMessage(raw)
	if msg == "" {
		msg = strings.TrimSpace(rawText)
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &AppError{Kind: KindBackend, Status: status, Message: msg, Raw: raw}
}

/* =========================================================
   Message extraction
   Known backend shapes, tried in order:
     {"detail": "..."}
     {"message": "..."}
     {"non_field_errors": ["..."]}
     {"error": "..."}
     {"field": ["msg", ...], ...}
   ========================================================= */

var generalKeys = []string{"detail", "message", "non_field_errors", "error"}

func isGeneralKey(k string) bool {
	for _, g := range generalKeys {
		if g == k {
			return true
		}
	}
	return false
}

// ExtractMessage turns any decoded backend error body into one readable string.
func ExtractMessage(body any) string {
	switch v := body.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		return flatten(v)
	case map[string]any:
		for _, k := range generalKeys {
			if raw, ok := v[k]; ok {
				if s := flatten(raw); s != "" {
					return s
				}
			}
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := flatten(v[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		return ExtractMessage(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
