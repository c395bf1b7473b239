// Package store connects to the data store and manages the persisted
// statistics and settings documents
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hvila/hvila/internal/osutil"
)

// Document keys.
const (
	KeyState    = "timerState"
	KeySettings = "timerSettings"
)

const (
	documentBucket = "documents"
	metaBucket     = "meta"
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(documentBucket)).Get([]byte(key))
		if v != nil {
			// v is only valid for the life of the transaction
			value = append([]byte(nil), v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(documentBucket)).Put([]byte(key), value)
	})
}

func (c *Client) Replace(docs map[string][]byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(documentBucket))

		for key, value := range docs {
			var err error
			if value == nil {
				err = b.Delete([]byte(key))
			} else {
				err = b.Put([]byte(key), value)
			}

			if err != nil {
				return err
			}
		}

		return nil
	})
}

// open creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.DBPermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errHvilaRunning
		}

		return nil, errOpenDB.Fmt(pathToDB).Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{documentBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()

		return nil, errMigration.Wrap(err)
	}

	return c, nil
}
