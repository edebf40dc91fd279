// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/formkeeper/formkeeper/internal/adapter"
)

// humanizeServerError rewrites transport and auth errors into short messages
// fit for a status line.
func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Invalid login or password"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found"
	case errors.Is(err, adapter.ErrConflict):
		return "Login is already taken"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unreachable"
	}

	return err.Error()
}
