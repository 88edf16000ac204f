// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package tui

import (
	"errors"
	"strings"

	"github.com/teamgrid/richinfo-server/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}

// humanizeFieldError translates profile-save failures into actionable text.
func humanizeFieldError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return "A field with this name already exists"
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return "Profile is too large, shorten or remove some fields"
	case errors.Is(err, adapter.ErrForbidden):
		return "Join a team before filling in your profile"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, sign in again"
	default:
		return humanizeServerUnavailableError(err)
	}
}

func humanizePeerError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return "You do not share a team with this user"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, sign in again"
	default:
		return humanizeServerUnavailableError(err)
	}
}
