// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"sort"
	"strings"

	"github.com/MKhiriev/anime-verse/internal/app"
)

const msgServerUnavailable = "No network connection or the server is unavailable"

// RenderError turns err into the message shown to the user. Field errors of
// a validation failure are listed one per line.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var appErr *app.Error
	if !errors.As(err, &appErr) {
		return errorStyle.Render("Error: " + err.Error())
	}

	var b strings.Builder
	switch appErr.Kind {
	case app.KindNetwork:
		b.WriteString(msgServerUnavailable)
	default:
		b.WriteString(valueOrDash(appErr.Message))
	}

	if len(appErr.Fields) > 0 {
		keys := make([]string, 0, len(appErr.Fields))
		for k := range appErr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("\n  ")
			b.WriteString(k)
			b.WriteString(": ")
			b.WriteString(appErr.Fields[k])
		}
	}

	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n" + b.String())
}
