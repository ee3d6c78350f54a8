package core

import (
	"strings"

	"github.com/bytedance/sonic"
)

// ErrorBody is the JSON error document the API returns with non-2xx responses.
type ErrorBody struct {
	Detail         string   `json:"detail"`
	Error          string   `json:"error"`
	NonFieldErrors []string `json:"non_field_errors"`
}

// Text returns the most specific message in the body, or "".
func (b *ErrorBody) Text() string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Error != "":
		return b.Error
	case len(b.NonFieldErrors) > 0:
		return strings.Join(b.NonFieldErrors, "; ")
	}
	return ""
}

// ParseErrorBody extracts a message from an error response body.
// It returns false when the body is not a JSON error document.
func ParseErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	var b ErrorBody
	if err := sonic.Unmarshal(body, &b); err != nil {
		return "", false
	}
	text := b.Text()
	return text, text != ""
}
