package stemmer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStopWord(t *testing.T) {
	sw := NewStopWords()
	assert.True(t, sw.IsStopWord("и"))
	assert.True(t, sw.IsStopWord("только"))
	assert.True(t, sw.IsStopWord("Только"))
	assert.False(t, sw.IsStopWord("новости"))
}

func TestAddFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop-words.txt")
	require.NoError(t, os.WriteFile(path, []byte("заявил\n\n ПОЭТОМУ \n"), 0644))

	sw := NewStopWords()
	require.NoError(t, sw.AddFromFile(path))

	assert.True(t, sw.IsStopWord("заявил"))
	assert.True(t, sw.IsStopWord("поэтому"))
	assert.False(t, sw.IsStopWord(""))
}
