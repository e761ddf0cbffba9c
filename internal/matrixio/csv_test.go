package matrixio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activityCSV = `protein,s1,s2,s3
A,1,2,3
B,4,5,6
`

func TestReadActivityCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(activityCSV), 0o644))

	m, err := ReadActivityCSV(path)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []string{"A", "B"}, m.RowNames())
	assert.Equal(t, []string{"s1", "s2", "s3"}, m.ColumnNames())

	v, err := m.At("B", "s2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestReadActivityCSV_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(activityCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	m, err := ReadActivityCSV(path)
	require.NoError(t, err)
	v, err := m.At("A", "s3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestReadActivityCSV_RaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("protein,s1,s2\nA,1\n"), 0o644))

	_, err := ReadActivityCSV(path)
	require.Error(t, err)
}

func TestReadClusterCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.csv")
	require.NoError(t, os.WriteFile(path, []byte("sample,cluster\ns1,c1\ns2,c2\n"), 0o644))

	clustering, err := ReadClusterCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "c1", clustering["s1"])
	assert.Equal(t, "c2", clustering["s2"])
}
