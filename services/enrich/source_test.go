package enrich

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kagura.json", `{"success": true, "data": {"hero_name": "Kagura"}}`)
	writeFile(t, dir, "x-borg.json", `{"success": true, "data": {"hero_name": "X.Borg"}}`)

	details, err := FromDirectory(context.Background(), dir)
	require.NoError(t, err)

	// canonical name always keys the record
	require.Contains(t, details, "Kagura")
	require.Contains(t, details, "X.Borg")
	// the stem "kagura" matches the name's file slug, so no alias
	require.NotContains(t, details, "kagura")
	// "x-borg" can't be derived from "X.Borg", so the stem becomes an alias
	require.Contains(t, details, "x-borg")
	require.Same(t, details["X.Borg"], details["x-borg"])
}

func TestFromDirectorySkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "failed.json", `{"success": false, "message": "hero not found"}`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "notes.txt", `not a detail file`)
	writeFile(t, dir, "kagura.json", `{"success": true, "data": {"hero_name": "Kagura"}}`)

	details, err := FromDirectory(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Contains(t, details, "Kagura")
}

func TestFromDirectoryMissing(t *testing.T) {
	_, err := FromDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
