package grep

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const poem = `Rust:
safe, fast, productive.
Pick three.
Trust me.`

func TestSearch(t *testing.T) {
	require.Equal(t, []string{"safe, fast, productive."}, Search("duct", poem))
	require.Nil(t, Search("absent", poem))
	require.Nil(t, Search("x", ""))
}

func TestSearchCaseInsensitive(t *testing.T) {
	require.Equal(t, []string{"Rust:", "Trust me."}, SearchCaseInsensitive("rUsT", poem))
}

func TestNewConfig(t *testing.T) {
	t.Setenv("IGNORE_CASE", "")

	_, err := NewConfig([]string{"query"})
	require.ErrorIs(t, err, ErrNotEnoughArgs)

	conf, err := NewConfig([]string{"to", "poem.txt"})
	require.NoError(t, err)
	require.Equal(t, &Config{Query: "to", FilePath: "poem.txt"}, conf)

	conf, err = NewConfig([]string{"to", "poem.txt", "1"})
	require.NoError(t, err)
	require.True(t, conf.IgnoreCase)

	t.Setenv("IGNORE_CASE", "1")
	conf, err = NewConfig([]string{"to", "poem.txt", "0"})
	require.NoError(t, err)
	require.True(t, conf.IgnoreCase)
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poem.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem+"\r\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Run(&Config{Query: "rust", FilePath: path, IgnoreCase: true}, &buf))
	require.Equal(t, "Rust:\nTrust me.\n", buf.String())

	buf.Reset()
	require.NoError(t, Run(&Config{Query: "rust", FilePath: path}, &buf))
	require.Equal(t, "Trust me.\n", buf.String())

	buf.Reset()
	require.NoError(t, Run(&Config{Query: "Rust", FilePath: path}, &buf))
	require.Equal(t, "Rust:\n", buf.String())

	err := Run(&Config{Query: "x", FilePath: filepath.Join(t.TempDir(), "missing")}, &buf)
	require.ErrorIs(t, err, os.ErrNotExist)
}
