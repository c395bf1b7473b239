package backup

import (
	"errors"

	"github.com/hvila/hvila/internal/apperr"
)

var (
	errInvalidBundle = &apperr.Error{
		Message: "invalid file format",
	}

	errInvalidSection = &apperr.Error{
		Message: "invalid %s section",
	}

	errEmptyBundle = &apperr.Error{
		Message: "the file contains neither settings nor statistics",
	}

	errReadDocument = &apperr.Error{
		Message: "reading %s from the database failed",
	}

	errWriteBundle = &apperr.Error{
		Message: "writing backup failed",
	}

	errImport = &apperr.Error{
		Message: "saving imported data failed",
	}
)

// Rejected reports whether err means the bundle itself was malformed, as
// opposed to a failure to read or write the database.
func Rejected(err error) bool {
	return errors.Is(err, errInvalidBundle) ||
		errors.Is(err, errInvalidSection) ||
		errors.Is(err, errEmptyBundle)
}
