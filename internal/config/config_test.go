package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIMEGAP_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "time_gap_summary.xlsx", cfg.Export.WorkbookName)
	assert.False(t, cfg.Export.WriteCSV)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	yaml := `
logging:
  level: debug
  output: console
export:
  workbook_name: from_file.xlsx
  write_csv: true
`
	require.NoError(t, os.WriteFile(configFile, []byte(yaml), 0644))

	t.Setenv("TIMEGAP_CONFIG_FILE", configFile)
	t.Setenv("TIMEGAP_EXPORT_WORKBOOK_NAME", "from_env.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	// File values apply where env is silent; env wins where both speak.
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Export.WriteCSV)
	assert.Equal(t, "from_env.xlsx", cfg.Export.WorkbookName)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging: ["), 0644))

	t.Setenv("TIMEGAP_CONFIG_FILE", configFile)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "bad output", mutate: func(c *Config) { c.Logging.Output = "syslog" }, wantErr: true},
		{name: "empty workbook name", mutate: func(c *Config) { c.Export.WorkbookName = "" }, wantErr: true},
		{name: "wrong extension", mutate: func(c *Config) { c.Export.WorkbookName = "summary.xls" }, wantErr: true},
		{name: "warn level accepted", mutate: func(c *Config) { c.Logging.Level = "warn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkbookPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.ReportsDir = "out"
	assert.Equal(t, filepath.Join("out", "time_gap_summary.xlsx"), cfg.WorkbookPath())
}
