// Package testutil holds helpers shared by hvila's tests
package testutil

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/hvila/hvila/internal/osutil"
	"github.com/hvila/hvila/internal/timeutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings in the fixtures
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	output, goldenFileName := tc.Output()

	if output != nil {
		g.Assert(t, goldenFileName, output)

		return
	}

	f := filepath.Join("testdata", goldenFileName+".golden")
	if _, err := os.Stat(f); err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

// Rand returns a deterministic random source.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Date is a shorthand for building calendar dates.
func Date(year int, month time.Month, day int) timeutil.Date {
	return timeutil.Date{Year: year, Month: month, Day: day}
}

// WriteFile creates a file with the given content in a temporary directory
// and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(path, []byte(content), osutil.FilePermission); err != nil {
		t.Fatal(err)
	}

	return path
}
