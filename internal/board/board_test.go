package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoard(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "board.toml"), []byte(contents), 0644)
	require.NoError(t, err)
	return dir
}

const sampleBoard = `
[board]
id = "ocean"
name = "Ocean Dashboards"
version = "1.0.0"
schema_version = "1.0"

[[cards]]
category = "Tools"
subcategory = "Editor"
url = "https://ex.org/e"

[[cards]]
category = "Tools"
subcategory = "Viewer"
url = ""

[[cards]]
category = "Docs"
subcategory = "Guide"
url = "https://ex.org/g"
icon = "icons/guide.png"
`

func TestLoad(t *testing.T) {
	dir := writeBoard(t, sampleBoard)

	b, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "ocean", b.ID)
	assert.Equal(t, "Ocean Dashboards", b.Name)
	assert.Len(t, b.Cards(), 3)

	// File order is preserved and IDs are derived from the labels.
	assert.Equal(t, "tools.editor", b.Cards()[0].ID)
	assert.Equal(t, "tools.viewer", b.Cards()[1].ID)
	assert.Equal(t, "docs.guide", b.Cards()[2].ID)
	assert.Equal(t, "icons/guide.png", b.Cards()[2].Icon)
}

func TestLoadMissingBoardToml(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board.toml not found")
}

func TestLoadEmptyBoard(t *testing.T) {
	dir := writeBoard(t, "[board]\nid = \"empty\"\nname = \"Empty\"\n")

	b, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, b.Cards())
	assert.Nil(t, b.ActiveCard())
}

func TestLoadDuplicateID(t *testing.T) {
	dir := writeBoard(t, `
[board]
id = "dup"
name = "Dup"

[[cards]]
category = "Tools"
subcategory = "Editor"

[[cards]]
category = "Tools"
subcategory = "Editor"
`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate card ID: tools.editor")
}

func TestLoadMissingLabels(t *testing.T) {
	dir := writeBoard(t, `
[board]
id = "bad"
name = "Bad"

[[cards]]
category = "Tools"
`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a category or subcategory")
}

func TestCardLookup(t *testing.T) {
	dir := writeBoard(t, sampleBoard)

	b, err := Load(dir)
	require.NoError(t, err)

	c, err := b.Card("tools.viewer")
	require.NoError(t, err)
	assert.Equal(t, "Viewer", c.Subcategory)
	assert.Empty(t, c.URL)

	_, err = b.Card("tools.missing")
	assert.Error(t, err)
}

func TestExplicitCardID(t *testing.T) {
	dir := writeBoard(t, `
[board]
id = "explicit"
name = "Explicit"

[[cards]]
id = "custom-id"
category = "Tools"
subcategory = "Editor"
`)

	b, err := Load(dir)
	require.NoError(t, err)

	c, err := b.Card("custom-id")
	require.NoError(t, err)
	assert.Equal(t, "Editor", c.Subcategory)
}
