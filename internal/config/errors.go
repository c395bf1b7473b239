package config

import "github.com/hvila/hvila/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownProfile = &apperr.Error{
		Message: "unknown timer profile: %s (expected one of %v)",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between 0 and 1, got %v",
	}

	errInvalidDailyGoal = &apperr.Error{
		Message: "daily goal must be between %d and %d sessions, got %d",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (expected debug, info, warn, or error)",
	}
)
