package store

import (
	"encoding/json"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/hvila/hvila/internal/timeutil"
)

const (
	keySchemaVersion = "schemaVersion"
	schemaVersion    = 1
)

// migrateLastDate rewrites a free-form streak date, as written by older
// releases (e.g. "Fri Oct 16 2026"), to the YYYY-MM-DD layout.
func migrateLastDate(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(documentBucket))

	v := bucket.Get([]byte(KeyState))
	if v == nil {
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(v, &doc); err != nil {
		// malformed documents are left for the adapter to report
		return nil //nolint:nilerr // not a migration failure
	}

	var s map[string]any
	if err := json.Unmarshal(doc["streak"], &s); err != nil || s == nil {
		return nil //nolint:nilerr // nothing to migrate
	}

	raw, ok := s["lastDate"].(string)
	if !ok {
		return nil
	}

	d, err := timeutil.ParseDate(raw)
	if err != nil {
		s["lastDate"] = nil
	} else {
		s["lastDate"] = d.String()
	}

	if doc["streak"], err = json.Marshal(s); err != nil {
		return err
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	return bucket.Put([]byte(KeyState), b)
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	current, _ := strconv.Atoi(string(meta.Get([]byte(keySchemaVersion))))
	if current >= schemaVersion {
		return nil
	}

	if err := migrateLastDate(tx); err != nil {
		return err
	}

	return meta.Put(
		[]byte(keySchemaVersion),
		[]byte(strconv.Itoa(schemaVersion)),
	)
}
