package store

// DB is the database storage interface. Documents are opaque JSON values
// addressed by key.
type DB interface {
	// Get returns the document stored under key, or nil if there is none.
	Get(key string) ([]byte, error)
	// Put creates or overwrites a single document.
	Put(key string, value []byte) error
	// Replace writes several documents in one transaction. A nil value
	// deletes the document.
	Replace(docs map[string][]byte) error
	// Close ends the database connection
	Close() error
}
