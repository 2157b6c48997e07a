// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
)

const msgServerUnavailable = "ネットワークに接続できないか、サーバーが応答しません"

// humanizeServerUnavailableError maps transport failures to a message the
// user can act on and leaves every other error text untouched.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return msgServerUnavailable
	}

	return err.Error()
}
