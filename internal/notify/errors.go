package notify

import "github.com/hvila/hvila/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse session command",
	}

	errRunCmd = &apperr.Error{
		Message: "session command %q failed",
	}

	errDesktop = &apperr.Error{
		Message: "unable to display notification",
	}

	errSound = &apperr.Error{
		Message: "unable to play sound",
	}
)
