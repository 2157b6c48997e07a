package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/imaging"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/store"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: 終了"))

	return b.String()
}

func cursor(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// errorText turns a service error into the message shown to the user.
func errorText(err error) string {
	var respErr *adapter.ResponseError
	switch {
	case errors.Is(err, store.ErrStorageQuota):
		return app.MsgStorageQuota
	case errors.Is(err, imaging.ErrDecode):
		return app.MsgDecodeFailed + "\n" + err.Error()
	case errors.Is(err, service.ErrNoPhotos):
		return "写真が選択されていません"
	case errors.As(err, &respErr) && respErr.Message != "":
		return respErr.Message
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, service.ErrAuthExchange):
		return app.MsgAuthFailed
	default:
		return humanizeServerUnavailableError(err)
	}
}
