package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/nutrilog/internal/config"
	"github.com/mmynk/nutrilog/internal/storage/memory"
	"github.com/mmynk/nutrilog/internal/storage/sqlite"
)

func TestOpenStore(t *testing.T) {
	store, err := openStore(config.StorageConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.MemoryStore{}, store)
	store.Close()

	store, err = openStore(config.StorageConfig{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "n.db")})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SQLiteStore{}, store)
	store.Close()

	_, err = openStore(config.StorageConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("addr"))
}
