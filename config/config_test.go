package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsDispatchSection(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	cfg.ApplyDefaults()

	assert.Equal(t, DefaultTimeZone, cfg.Dispatch.TimeZone)
	assert.Equal(t, DefaultWorkers, cfg.Dispatch.Workers)
	assert.Equal(t, DefaultBody, cfg.Dispatch.Body)
	assert.Equal(t, DefaultSendTimeout, cfg.Dispatch.SendTimeout)
	assert.Equal(t, DefaultStoreTimeout, cfg.Dispatch.StoreTimeout)
	assert.Equal(t, DefaultTickTimeout, cfg.Dispatch.TickTimeout)
	assert.Equal(t, DefaultCronSpec, cfg.Scheduler.Cron.Spec)
	assert.Equal(t, DefaultLockKey, cfg.Redis.LockKey)
	assert.Equal(t, DefaultLockTTL, cfg.Redis.LockTTL)
	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Dispatch.TimeZone = "Europe/London"
	cfg.Dispatch.Workers = 4
	cfg.Dispatch.SendTimeout = 3 * time.Second

	cfg.ApplyDefaults()

	assert.Equal(t, "Europe/London", cfg.Dispatch.TimeZone)
	assert.Equal(t, 4, cfg.Dispatch.Workers)
	assert.Equal(t, 3*time.Second, cfg.Dispatch.SendTimeout)
}

func TestValidate_RejectsUnknownTimeZone(t *testing.T) {
	cfg := &Config{}
	cfg.Dispatch.TimeZone = "Mars/Olympus_Mons"
	cfg.ApplyDefaults()

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dispatch config")
}

func TestValidate_RejectsTooManyWorkers(t *testing.T) {
	cfg := &Config{}
	cfg.Dispatch.Workers = 1000
	cfg.ApplyDefaults()

	assert.Error(t, cfg.Validate())
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("dispatch:\n  timeZone: Asia/Colombo\n  workers: 2\n  sendTimeout: 4s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("DISPATCH_TIMEZONE", "Asia/Dubai")

	cfg, err := LoadWithEnv[Config]("test")

	require.NoError(t, err)
	assert.Equal(t, "Asia/Dubai", cfg.Dispatch.TimeZone)
	assert.Equal(t, 2, cfg.Dispatch.Workers)
	assert.Equal(t, 4*time.Second, cfg.Dispatch.SendTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}
