package timeutil

import "github.com/hvila/hvila/internal/apperr"

var (
	errEmptyDate = &apperr.Error{
		Message: "date must not be empty",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to parse date: %q",
	}
)
