package exercise

import "github.com/hvila/hvila/internal/apperr"

var (
	errInvalidCatalog = &apperr.Error{
		Message: "exercise catalog is not valid YAML",
	}

	errEmptyCategory = &apperr.Error{
		Message: "exercise category %q has no entries",
	}

	errMissingTitle = &apperr.Error{
		Message: "exercise %d in category %q has no title",
	}

	errUnknownCategory = &apperr.Error{
		Message: "unknown exercise category: %s (expected micro, exercise, or long)",
	}
)
