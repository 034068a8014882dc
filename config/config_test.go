package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "mysql", c.DBDriver)
	assert.Equal(t, "127.0.0.1", c.DBHost)
	assert.Equal(t, "3306", c.DBPort)
	assert.Equal(t, "data/gifter.db", c.SQLitePath)
	assert.Equal(t, 120, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.DBPassword)
}

func TestLoadJSONConfigGrouped(t *testing.T) {
	path := writeConfig(t, `{
		"app": {"AppPort": "9000", "RateLimitPerMinute": 30, "AllowedOrigins": ["https://a.example", "https://b.example"]},
		"gin": {"Mode": "debug", "LogPath": "/tmp/gin.log"},
		"database": {"Driver": "sqlite", "SQLitePath": "/tmp/x.db", "DBUser": "svc"},
		"log": {"Level": "warn", "MaxBackups": 9, "Compress": true}
	}`)

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, 30, c.RateLimitPerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	assert.Equal(t, "debug", c.GinMode)
	assert.Equal(t, "/tmp/gin.log", c.GinPath)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "/tmp/x.db", c.SQLitePath)
	assert.Equal(t, "svc", c.DBUser)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 9, c.LogMaxBackups)
	assert.True(t, c.LogCompress)
}

func TestLoadJSONConfigFlatKeys(t *testing.T) {
	path := writeConfig(t, `{"AppPort": "7000", "DBDriver": "sqlite", "LogLevel": "debug"}`)

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))
	assert.Equal(t, "7000", c.AppPort)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadJSONConfigMissingAndInvalid(t *testing.T) {
	var c AppConfig
	assert.NoError(t, loadJSONConfig(filepath.Join(t.TempDir(), "absent.json"), &c))
	assert.Equal(t, AppConfig{}, c)

	assert.Error(t, loadJSONConfig(writeConfig(t, `{"app":`), &c))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "5555")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/var/lib/gifter.db")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("LOG_COMPRESS", "true")

	c := AppConfig{AppPort: "1", DBDriver: "mysql"}
	applyEnvOverrides(&c)

	assert.Equal(t, "5555", c.AppPort)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "/var/lib/gifter.db", c.SQLitePath)
	assert.Equal(t, 10, c.RateLimitPerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	assert.True(t, c.LogCompress)
}

func TestSetAppliesDefaults(t *testing.T) {
	prevCfg, prevLoaded := cfg, loaded
	t.Cleanup(func() { cfg, loaded = prevCfg, prevLoaded })

	Set(AppConfig{DBDriver: "sqlite"})
	got := Get()
	assert.Equal(t, "sqlite", got.DBDriver)
	assert.Equal(t, "8080", got.AppPort)
}

func TestMysqlDSN(t *testing.T) {
	c := AppConfig{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d"}
	assert.Equal(t, "u:p@tcp(h:1)/d?charset=utf8mb4&parseTime=True&loc=Local", mysqlDSN(c))

	c.DatabaseURI = "custom"
	assert.Equal(t, "custom", mysqlDSN(c))
}

func TestOpenDatabaseSQLiteMigrates(t *testing.T) {
	conn, err := OpenDatabase(AppConfig{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "nested", "app.db"),
		LogLevel:   "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	// second run leaves existing tables alone
	require.NoError(t, Migrate(conn))

	for _, table := range []string{"UserProfile", "Post", "Comment"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestOpenDatabaseUnknownDriver(t *testing.T) {
	_, err := OpenDatabase(AppConfig{DBDriver: "oracle"})
	assert.Error(t, err)
}
