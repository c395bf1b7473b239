package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/hvila/hvila/internal/osutil"
	"github.com/hvila/hvila/internal/phase"
	"github.com/hvila/hvila/internal/timeutil"
)

// Status is a snapshot of a running timer for other processes to read.
type Status struct {
	EndTime   time.Time   `json:"end_time,omitzero"`
	Phase     phase.Phase `json:"phase"`
	Remaining int         `json:"remaining"`
	Sessions  int         `json:"session_count"`
	Running   bool        `json:"running"`
}

// Status returns the current status snapshot.
func (s *Session) Status() Status {
	st := Status{
		Phase:     s.state.Phase,
		Remaining: s.state.CurrentTime,
		Sessions:  s.state.SessionCount,
		Running:   s.state.Running,
	}

	if st.Running {
		st.EndTime = s.opts.Now().Add(time.Duration(st.Remaining) * time.Second)
	}

	return st
}

// RemainingAt returns the seconds left in the phase at the given instant.
func (st Status) RemainingAt(now time.Time) int {
	if !st.Running {
		return st.Remaining
	}

	return max(0, timeutil.Round(st.EndTime.Sub(now).Seconds()))
}

// WriteStatus saves the status to path.
func WriteStatus(path string, st Status) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, osutil.DBPermission)
}

// ReportStatus prints the status of the timer in another hvila process. It
// prints nothing if no timer is running.
func ReportStatus(w io.Writer, dbPath, statusPath string, now time.Time) error {
	db, err := bolt.Open(dbPath, osutil.DBPermission, &bolt.Options{
		Timeout:  100 * time.Millisecond,
		ReadOnly: true,
	})
	// This means hvila is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	b, err := os.ReadFile(statusPath)
	if err != nil {
		// missing file should not return an error
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	var st Status

	if err := json.Unmarshal(b, &st); err != nil {
		return err
	}

	text := "[" + st.Phase.Label() + "]"
	if !st.Running {
		text += " (paused)"
	}

	_, err = fmt.Fprintf(w, "%s: %s\n", text, timeutil.Clock(st.RemainingAt(now)))

	return err
}
