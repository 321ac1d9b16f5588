// Package netx holds HTTP and network error helpers for outbound calls.
package netx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
)

// IsTimeout reports whether err was caused by a deadline, either the
// context's or the transport's.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsConnRefused reports whether nothing was listening at the remote address.
func IsConnRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}

// ReasonPhrase extracts "Unauthorized" from a "401 Unauthorized" status line.
// An empty phrase falls back to the standard text for the code.
func ReasonPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}
	return phrase
}
