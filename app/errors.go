package app

import "github.com/hvila/hvila/internal/apperr"

var (
	errMissingImportFile = &apperr.Error{
		Message: "no backup file specified",
	}

	errInvalidFileFormat = &apperr.Error{
		Message: "Invalid file format!",
	}

	errEditorFailed = &apperr.Error{
		Message: "editor %q exited with an error",
	}

	errResetAborted = &apperr.Error{
		Message: "reset aborted",
	}
)
