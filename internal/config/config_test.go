package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hyken1/OdontoClinic/internal/httperr"
)

func writeCreds(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("LOCK_TTL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, DriverGoogle, cfg.StoreDriver)
	assert.Equal(t, "/etc/secrets/credenciais.json", cfg.CredentialsCloudPath)
	assert.Equal(t, "./credenciais.json", cfg.CredentialsLocalPath)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("LOCK_TTL", "3s")

	cfg := Load()

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.LockTTL)
}

func TestLoadCredentials_PrefersCloudPath(t *testing.T) {
	dir := t.TempDir()
	cloud := writeCreds(t, dir, "cloud.json", `{"client_email":"cloud@x.iam","private_key":"k1"}`)
	local := writeCreds(t, dir, "local.json", `{"client_email":"local@x.iam","private_key":"k2"}`)

	cfg := &Config{CredentialsCloudPath: cloud, CredentialsLocalPath: local}
	creds, err := cfg.LoadCredentials()

	require.NoError(t, err)
	assert.Equal(t, "cloud@x.iam", creds.ClientEmail)
	assert.Equal(t, cloud, creds.Source)
}

func TestLoadCredentials_FallsBackToLocal(t *testing.T) {
	dir := t.TempDir()
	local := writeCreds(t, dir, "local.json", `{"client_email":"local@x.iam","private_key":"k2"}`)

	cfg := &Config{CredentialsCloudPath: filepath.Join(dir, "missing.json"), CredentialsLocalPath: local}
	creds, err := cfg.LoadCredentials()

	require.NoError(t, err)
	assert.Equal(t, "local@x.iam", creds.ClientEmail)
}

func TestLoadCredentials_Missing(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		CredentialsCloudPath: filepath.Join(dir, "a.json"),
		CredentialsLocalPath: filepath.Join(dir, "b.json"),
	}

	_, err := cfg.LoadCredentials()

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeCredentialsMissing))
}

func TestLoadCredentials_Incomplete(t *testing.T) {
	dir := t.TempDir()
	local := writeCreds(t, dir, "local.json", `{"client_email":"local@x.iam"}`)

	cfg := &Config{CredentialsLocalPath: local}
	_, err := cfg.LoadCredentials()

	require.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, httperr.CodeCredentialsMissing))
}
