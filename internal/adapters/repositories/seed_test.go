package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFileJSON(t *testing.T) {
	path := writeFile(t, "clients.json", `[
		{"x": 5, "y": 5, "demand": 10, "priority": 10},
		{"x": 15, "y": 8, "demand": 20, "priority": 9},
		{"demand": 3, "priority": 1}
	]`)

	clients, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, clients, 3)

	require.Equal(t, 0, clients[0].Index)
	require.Equal(t, 5.0, clients[0].Location.X)
	require.Equal(t, 20.0, clients[1].Demand)
	require.Equal(t, 9, clients[1].Priority)
	require.Nil(t, clients[2].Location)
	require.Equal(t, 2, clients[2].Index)
}

func TestLoadSeedFileYAML(t *testing.T) {
	path := writeFile(t, "clients.yaml", `
- x: 30
  y: 25
  demand: 35
  priority: 5
- x: 8
  y: 12
  demand: 8
  priority: 3
`)

	clients, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	require.Equal(t, 25.0, clients[0].Location.Y)
	require.Equal(t, 3, clients[1].Priority)
}

func TestLoadSeedFileRejectsBadItems(t *testing.T) {
	cases := map[string]string{
		"half location":   `[{"x": 1, "demand": 1}]`,
		"negative demand": `[{"x": 1, "y": 1, "demand": -1}]`,
		"not json":        `{`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSeedFile(writeFile(t, "clients.json", content))
			require.Error(t, err)
		})
	}

	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestMemoryClientRepository(t *testing.T) {
	path := writeFile(t, "clients.json", `[{"x": 1, "y": 2, "demand": 3, "priority": 4}, {"x": 1, "y": 2, "demand": 3, "priority": 4}]`)
	seeded, err := LoadSeedFile(path)
	require.NoError(t, err)

	repo := NewMemoryClientRepository(seeded)
	clients, err := repo.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	require.Equal(t, 1, clients[1].Index)

	// callers get their own copy
	clients[0].Demand = 99
	again, err := repo.ListClients(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3.0, again[0].Demand)
}
