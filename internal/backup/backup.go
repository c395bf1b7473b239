// Package backup exports the persisted documents to a single JSON bundle and
// imports them back
package backup

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/hvila/hvila/internal/config"
	"github.com/hvila/hvila/internal/models"
	"github.com/hvila/hvila/store"
)

// Version is written to every exported bundle.
const Version = "1.0"

// Bundle is the export file. A null section means the document did not
// exist when the bundle was written.
type Bundle struct {
	Version    string          `json:"version"`
	ExportDate string          `json:"exportDate"`
	Settings   json.RawMessage `json:"settings"`
	State      json.RawMessage `json:"state"`
}

// Result holds the documents written by a successful import.
type Result struct {
	Settings *config.Settings
	Stats    *models.StatsDoc
}

// Export reads both documents from db. A document that is not a JSON object
// is exported as null.
func Export(db store.DB, now time.Time) (Bundle, error) {
	b := Bundle{
		Version:    Version,
		ExportDate: now.UTC().Format(time.RFC3339),
	}

	var err error

	b.Settings, err = readObject(db, store.KeySettings)
	if err != nil {
		return b, err
	}

	b.State, err = readObject(db, store.KeyState)
	if err != nil {
		return b, err
	}

	return b, nil
}

func readObject(db store.DB, key string) (json.RawMessage, error) {
	v, err := db.Get(key)
	if err != nil {
		return nil, errReadDocument.Fmt(key).Wrap(err)
	}

	if !isObject(v) {
		return nil, nil
	}

	return json.RawMessage(v), nil
}

// Write encodes the bundle as indented JSON.
func Write(w io.Writer, b Bundle) error {
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errWriteBundle.Wrap(err)
	}

	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return errWriteBundle.Wrap(err)
	}

	return nil
}

// Parse decodes and validates a bundle. The settings are merged over the
// defaults and the streak date may use any human readable layout.
func Parse(r io.Reader) (Result, error) {
	var (
		res Result
		b   Bundle
	)

	data, err := io.ReadAll(r)
	if err != nil {
		return res, errInvalidBundle.Wrap(err)
	}

	if !isObject(data) {
		return res, errInvalidBundle
	}

	if err := json.Unmarshal(data, &b); err != nil {
		return res, errInvalidBundle.Wrap(err)
	}

	if !isNull(b.Settings) {
		s := config.DefaultSettings()
		if err := decodeObject(b.Settings, &s); err != nil {
			return res, errInvalidSection.Fmt("settings").Wrap(err)
		}

		if err := s.Validate(); err != nil {
			return res, errInvalidSection.Fmt("settings").Wrap(err)
		}

		res.Settings = &s
	}

	if !isNull(b.State) {
		var doc models.StatsDoc
		if err := decodeObject(b.State, &doc); err != nil {
			return res, errInvalidSection.Fmt("state").Wrap(err)
		}

		res.Stats = &doc
	}

	if res.Settings == nil && res.Stats == nil {
		return res, errEmptyBundle
	}

	return res, nil
}

// Import parses the bundle read from r and overwrites the documents it
// contains in one transaction. Nothing is written if the bundle is invalid.
func Import(db store.DB, r io.Reader) (Result, error) {
	res, err := Parse(r)
	if err != nil {
		return res, err
	}

	docs := make(map[string][]byte, 2)

	if res.Settings != nil {
		if docs[store.KeySettings], err = json.Marshal(res.Settings); err != nil {
			return res, errImport.Wrap(err)
		}
	}

	if res.Stats != nil {
		if docs[store.KeyState], err = json.Marshal(res.Stats); err != nil {
			return res, errImport.Wrap(err)
		}
	}

	if err := db.Replace(docs); err != nil {
		return res, errImport.Wrap(err)
	}

	return res, nil
}

func decodeObject(raw json.RawMessage, v any) error {
	if !isObject(raw) {
		return errInvalidBundle
	}

	return json.Unmarshal(raw, v)
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)

	return len(b) > 0 && b[0] == '{' && json.Valid(b)
}
