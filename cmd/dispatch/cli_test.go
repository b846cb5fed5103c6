package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "dispatch.db"))
	t.Setenv("LOG_LEVEL", "error")
}

func TestCLI_DriversAndUsers(t *testing.T) {
	useSQLite(t)

	_, err := execute(t, "drivers", "add", "Zulu Q")
	require.NoError(t, err)

	out, err := execute(t, "drivers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Zulu Q\n")
	assert.Contains(t, out, "SEM\n")

	_, err = execute(t, "drivers", "add", "zulu q")
	assert.ErrorIs(t, err, domain.ErrDuplicateDriver)

	_, err = execute(t, "users", "create", "carol", "pw")
	require.NoError(t, err)
	out, err = execute(t, "users", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Admin"))
	assert.True(t, strings.HasPrefix(lines[2], "carol"))
}

func TestWriteOutput(t *testing.T) {
	subs := []domain.Submission{{
		ID:          "2026-01-02T03:04:05.000Z-Admin",
		Username:    "Admin",
		SubmittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FormData:    domain.FormData{Comments: "fog"},
	}}

	var js bytes.Buffer
	require.NoError(t, writeOutput(&js, "json", subs))
	assert.Contains(t, js.String(), `"username": "Admin"`)

	var ym bytes.Buffer
	require.NoError(t, writeOutput(&ym, "yaml", subs))
	assert.Contains(t, ym.String(), "username: Admin")
	assert.Contains(t, ym.String(), "comments: fog")

	assert.Error(t, writeOutput(&bytes.Buffer{}, "xml", subs))
}
