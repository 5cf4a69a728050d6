package timer

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse session_cmd option",
	}

	errRunSessionCmd = &apperr.Error{
		Message: "session command %q failed",
	}
)
