package convert_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qhfkit/internal/convert"
	"qhfkit/internal/testutil"
)

func TestParseFormat(t *testing.T) {
	f, err := convert.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, convert.FormatJSON, f)

	f, err = convert.ParseFormat("txt")
	require.NoError(t, err)
	assert.Equal(t, convert.FormatTXT, f)

	_, err = convert.ParseFormat("xml")
	require.Error(t, err)
}

func TestFileJSON(t *testing.T) {
	dir := t.TempDir()
	in := testutil.WriteFile(t, dir, "bob.qhf",
		testutil.Header{Version: 3, UIN: "123", Nickname: "Bob"},
		testutil.Message{Timestamp: 1700000000, Direction: 1, Type: 1, Text: "hello"},
	)
	out := filepath.Join(dir, "out", "bob.json")

	require.NoError(t, convert.File(in, out, convert.Options{Format: convert.FormatJSON}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "123", doc["uin"])
	assert.Equal(t, "Bob", doc["nickname"])
}

func TestFileDecodeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.qhf")
	require.NoError(t, os.WriteFile(in, []byte("not a history"), 0o644))
	out := filepath.Join(dir, "broken.json")

	require.Error(t, convert.File(in, out, convert.Options{Format: convert.FormatJSON}))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no output file may exist after a failed decode")
}

func TestDirConvertsIndependently(t *testing.T) {
	inDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "exported")

	testutil.WriteFile(t, inDir, "alice.qhf",
		testutil.Header{Version: 2, UIN: "1", Nickname: "Alice"},
		testutil.Message{Timestamp: 1, Direction: 0, Type: 1, Text: "a"},
	)
	testutil.WriteFile(t, inDir, "bob.QHF",
		testutil.Header{Version: 3, UIN: "2", Nickname: "Bob"},
		testutil.Message{Timestamp: 2, Direction: 1, Type: 13, Text: "b"},
	)
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "corrupt.qhf"), []byte("QHFgarbage"), 0o644))
	// Non-QHF files are ignored entirely.
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "readme.txt"), []byte("x"), 0o644))

	sum, err := convert.Dir(context.Background(), inDir, outDir, convert.Options{
		Format: convert.FormatTXT,
		Jobs:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, convert.Summary{Found: 3, Converted: 2, Failed: 1}, sum)

	for _, name := range []string{"alice.txt", "bob.txt"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(outDir, "corrupt.txt"))
	assert.True(t, os.IsNotExist(err), "failed file must produce no output")
}

func TestDirCanceledContext(t *testing.T) {
	inDir := t.TempDir()
	testutil.WriteFile(t, inDir, "a.qhf", testutil.Header{Version: 2, UIN: "1", Nickname: "n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := convert.Dir(ctx, inDir, t.TempDir(), convert.Options{})
	require.Error(t, err)
}
