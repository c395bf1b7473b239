// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hvila/hvila/internal/osutil"
)

const (
	filesDir = "files"
	iconFile = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir. Files that already exist are
// left alone.
func Install(dir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			destPath := filepath.Join(dir, path.Base(p))

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, osutil.FilePermission)
		},
	)
}

// IconPath returns where Install puts the notification icon.
func IconPath(dir string) string {
	return filepath.Join(dir, iconFile)
}
