package session

import (
	"strings"

	"github.com/healthlens/healthlens-go/pkg/apiclient"
)

// Stable user-facing messages for the handful of failure categories the
// auth surfaces distinguish.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailNotConfirmed  = "Please check your email to confirm your account"
	MsgUserNotFound       = "No user found with this email"
	MsgWeakPassword       = "Password must be at least 8 characters long"
	MsgEmailInUse         = "An account with this email already exists"
	MsgNetworkError       = "Network error. Please check your internet connection"
	MsgUnknownError       = "An unexpected error occurred. Please try again"
	MsgSessionExpired     = "Your session has expired. Please sign in again"
	MsgRateLimited        = "Too many attempts. Please try again later"
)

// FriendlyMessage maps an auth-flow error onto a stable, human-readable
// message for display. Transport errors classify as network failures;
// backend messages are matched on well-known substrings; anything
// unrecognized falls back to a generic message.
func FriendlyMessage(err error) string {
	if err == nil {
		return MsgUnknownError
	}

	if apiclient.IsTransportError(err) {
		return MsgNetworkError
	}

	message := strings.ToLower(err.Error())

	switch {
	case strings.Contains(message, "invalid login credentials"),
		strings.Contains(message, "invalid password"):
		return MsgInvalidCredentials
	case strings.Contains(message, "email not confirmed"):
		return MsgEmailNotConfirmed
	case strings.Contains(message, "user not found"):
		return MsgUserNotFound
	case strings.Contains(message, "already exists"),
		strings.Contains(message, "email already registered"):
		return MsgEmailInUse
	case strings.Contains(message, "password"):
		return MsgWeakPassword
	case strings.Contains(message, "failed to fetch"),
		strings.Contains(message, "network"):
		return MsgNetworkError
	case strings.Contains(message, "session expired"),
		strings.Contains(message, "not authenticated"):
		return MsgSessionExpired
	case strings.Contains(message, "too many requests"),
		strings.Contains(message, "rate limit"):
		return MsgRateLimited
	default:
		return MsgUnknownError
	}
}
