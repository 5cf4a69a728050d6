package app

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errUnknownMode = &apperr.Error{
		Message: "unknown mode %q: expected focus, shortBreak, or longBreak",
	}

	errUnknownEvent = &apperr.Error{
		Message: "unknown event %q: expected start or end",
	}

	errUnknownPermissionCmd = &apperr.Error{
		Message: "unknown permission command %q: expected status, allow, deny, or reset",
	}
)
