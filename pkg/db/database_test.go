package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgres(t *testing.T) {
	t.Parallel()

	assert.True(t, isPostgres("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgres("postgresql://localhost/db"))
	assert.False(t, isPostgres(""))
	assert.False(t, isPostgres(MemoryDSN))
	assert.False(t, isPostgres("catalog.db"))
}

func TestOpen_InMemory(t *testing.T) {
	t.Parallel()

	gdb, err := Open(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	type probe struct {
		ID   int `gorm:"primaryKey"`
		Name string
	}
	require.NoError(t, gdb.AutoMigrate(&probe{}))
	require.NoError(t, gdb.Create(&probe{ID: 1, Name: "a"}).Error)

	var got probe
	require.NoError(t, gdb.First(&got, 1).Error)
	assert.Equal(t, "a", got.Name)
}
