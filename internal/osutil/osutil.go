// Package osutil holds platform names, exit codes and file permissions
package osutil

import "io/fs"

const (
	Windows = "windows"
	Darwin  = "darwin"
)

// ExitCode is a process exit status.
type ExitCode int

const (
	ExitOK    ExitCode = 0
	ExitError ExitCode = 1
)

const (
	DirPermission  fs.FileMode = 0o755
	FilePermission fs.FileMode = 0o644
	// DBPermission is used for files that must only be readable by the owner.
	DBPermission fs.FileMode = 0o600
)

// DefaultEditor returns the editor used when neither VISUAL nor EDITOR is set.
func DefaultEditor(goos string) string {
	if goos == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
