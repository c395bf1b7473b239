package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackupFileName(t *testing.T) {
	assert.Equal(t, "hvila-backup-2026-10-16.json", BackupFileName("2026-10-16"))
}

func TestStripExtension(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{"hvila-backup-2026-10-16.json", "hvila-backup-2026-10-16"},
		{"bell.ogg", "bell"},
		{"noext", "noext"},
	}

	for _, v := range table {
		assert.Equal(t, v.expected, StripExtension(v.input))
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv(envName, "dev")

	p := &Paths{
		configFileName: "config.yml",
		dbFileName:     "hvila.db",
	}

	p.applyEnvironmentOverrides()

	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "hvila_dev.db", p.dbFileName)
	assert.Equal(t, "status_dev.json", p.statusFileName)
	assert.Equal(t, "hvila_dev.log", p.logFileName)
}
