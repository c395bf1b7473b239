package runner

import "github.com/hvila/hvila/internal/apperr"

var (
	errReadCommands = &apperr.Error{
		Message: "reading commands failed",
	}

	errUnknownCommand = &apperr.Error{
		Message: "unknown command %q (expected t, s, r, or q)",
	}
)
