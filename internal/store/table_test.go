package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	return New(path, []string{"id", "name", "qty"})
}

func TestTable_FirstReadCreatesHeaderOnlyFile(t *testing.T) {
	tbl := newTable(t)

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)

	data, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,name,qty\n", string(data))
}

func TestTable_AppendThenReadAll(t *testing.T) {
	tbl := newTable(t)

	require.NoError(t, tbl.Append([]string{"1", "coffee", "3"}))
	require.NoError(t, tbl.Append([]string{"2", "tea", "5"}))

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "coffee", "3"}, rows[0])
	assert.Equal(t, []string{"2", "tea", "5"}, rows[1])
}

func TestTable_ReadAllSkipsBlankLines(t *testing.T) {
	tbl := newTable(t)
	require.NoError(t, tbl.Append([]string{"1", "coffee", "3"}))

	f, err := os.OpenFile(tbl.Path(), os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, tbl.Append([]string{"2", "tea", "5"}))

	rows, err := tbl.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestTable_RewriteReplacesWholeFile(t *testing.T) {
	tbl := newTable(t)
	require.NoError(t, tbl.Append([]string{"1", "coffee", "3"}))
	require.NoError(t, tbl.Append([]string{"2", "tea", "5"}))

	require.NoError(t, tbl.Rewrite([][]string{
		{"1", "coffee", "0"},
		{"2", "tea", "5"},
	}))

	data, err := os.ReadFile(tbl.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,name,qty\n1,coffee,0\n2,tea,5\n", string(data))
}

func TestTable_NextID(t *testing.T) {
	tbl := newTable(t)

	// レコードが無ければ1
	id, err := tbl.NextID(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, tbl.Append([]string{"3", "coffee", "1"}))
	require.NoError(t, tbl.Append([]string{"oops", "broken", "1"}))
	require.NoError(t, tbl.Append([]string{"7", "tea", "1"}))

	// 数値として読めない行は無視してmax+1
	id, err = tbl.NextID(0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestTable_LineCountIncludesHeader(t *testing.T) {
	tbl := newTable(t)

	n, err := tbl.LineCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, tbl.Append([]string{"1", "coffee", "3"}))
	require.NoError(t, tbl.Append([]string{"2", "tea", "5"}))

	n, err = tbl.LineCount()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
