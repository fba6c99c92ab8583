package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSQL(t *testing.T) {
	dir := t.TempDir()

	paths, err := newTestReporter().Save(dir, FormatSQL)
	require.NoError(t, err)
	require.Len(t, paths, 5)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

func TestSaveBothUsesSubdirectories(t *testing.T) {
	dir := t.TempDir()

	paths, err := newTestReporter().Save(dir, FormatBoth)
	require.NoError(t, err)
	require.Len(t, paths, 9)

	_, err = os.Stat(filepath.Join(dir, "sql", "01_table_columns.sql"))
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "python", "01_table_columns.py"))
	assert.NoError(t, err)
}

func TestSaveCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deeply", "nested", "output")

	_, err := newTestReporter().Save(dir, FormatSQL)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "00_COLUMNS_TO_COPY.txt"))
	assert.NoError(t, err)
}
