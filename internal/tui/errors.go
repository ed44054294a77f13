// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// networkHint returns a short hint for refresh failures caused by the
// network, or "" when message does not look like one.
func networkHint(message string) string {
	s := strings.ToLower(message)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the server is unreachable"
	}

	return ""
}
