package store

import "github.com/hvila/hvila/internal/apperr"

var (
	errHvilaRunning = &apperr.Error{
		Message: "is hvila already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database at %s",
	}

	errMigration = &apperr.Error{
		Message: "database migration failed",
	}
)
