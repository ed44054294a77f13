package adapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and an [*HTTPStatusError]
// otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	return &HTTPStatusError{
		StatusCode: resp.StatusCode(),
		Reason:     reasonPhrase(resp.StatusCode(), resp.Status()),
		Body:       body,
	}
}

// reasonPhrase extracts the reason phrase from a status line such as
// "500 Internal Server Error". Servers may send a non-standard phrase, which
// is kept as is; an empty phrase falls back to the canonical one.
func reasonPhrase(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	if reason == "" {
		reason = http.StatusText(code)
	}
	return reason
}
