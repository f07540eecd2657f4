package words

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadList_Embedded(t *testing.T) {
	l, err := LoadList("")
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 100)
	assert.True(t, l.Contains("CRANE"))
	for _, w := range l.All() {
		assert.Len(t, w, WordLen)
		assert.True(t, isAlpha(w), w)
	}
}

func TestLoadList_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")
	body := "# comment\nCrane\n\n  slate \nfour\nsl4te\ncrane\ntoolong\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	l, err := LoadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, l.All())
}

func TestLoadList_Errors(t *testing.T) {
	_, err := LoadList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing\nab\n"), 0o644))
	_, err = LoadList(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestList_WordsReturnsCopy(t *testing.T) {
	l := NewList([]string{"crane", "slate"})
	got, err := l.Words(context.Background())
	require.NoError(t, err)
	got[0] = "xxxxx"
	assert.Equal(t, []string{"crane", "slate"}, l.All())

	_, err = NewList(nil).Words(context.Background())
	assert.ErrorIs(t, err, ErrEmpty)
}
