package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "homevisit_config.yaml")

	validCfg := `databaseURL: postgres://localhost:5432/homevisit
notificationSubject: Visit update
emailEnabled: true
gmailUserID: me
standingPlans:
  - motherID: 10
    rrule: FREQ=WEEKLY;BYDAY=MO;COUNT=4
    time: "10:00"
    notes: weekly checkup
`

	require.NoError(t, os.WriteFile(cfgPath, []byte(validCfg), 0644))

	cfg, err := LoadFromPath(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/homevisit", cfg.DatabaseURL)
	assert.Equal(t, "Visit update", cfg.NotificationSubject)
	assert.True(t, cfg.EmailEnabled)
	require.Len(t, cfg.StandingPlans, 1)
	assert.Equal(t, int64(10), cfg.StandingPlans[0].MotherID)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=MO;COUNT=4", cfg.StandingPlans[0].RRule)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "homevisit_config.yaml")

	require.NoError(t, os.WriteFile(cfgPath, []byte("databaseURL: [not: closed"), 0644))

	_, err := LoadFromPath(cfgPath)
	assert.Error(t, err)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_EmptyConfigIsFine(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestValidate_BadRRule(t *testing.T) {
	cfg := &Config{StandingPlans: []StandingPlan{
		{MotherID: 10, RRule: "FREQ=SOMETIMES"},
	}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rrule")
}

func TestValidate_EmailNeedsGmailUser(t *testing.T) {
	cfg := &Config{EmailEnabled: true}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gmailUserID")
}
