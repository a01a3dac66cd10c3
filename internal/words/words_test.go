package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Normalises(t *testing.T) {
	in := "# comment\nCrane\n  slate \n\nab1cd\ncrane\nlonger\nTRACE\n"
	l, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "slate", "trace"}, l.Words())
	assert.Equal(t, 5, l.WordLen())
	kept, dropped := l.Stats()
	assert.Equal(t, 3, kept)
	assert.Equal(t, 2, dropped, "non-alpha and wrong length")
	assert.True(t, l.Contains("SLATE"))
	assert.False(t, l.Contains("longer"))
}

func TestParse_ExplicitLength(t *testing.T) {
	l, err := Parse(strings.NewReader("crane\nlonger\nbreath\n"), Options{Length: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"longer", "breath"}, l.Words())
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("# nothing\n\n"), Options{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FromSlice([]string{"12345"}, Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("bear\nbeat\ncart\ncare\n"), 0o644))

	l, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, "cart", l.At(2))
	assert.Contains(t, l.Words(), l.Random())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.Error(t, err)
}

func TestEmbedded(t *testing.T) {
	l, err := Embedded(Options{})
	require.NoError(t, err)
	assert.Greater(t, l.Len(), 100)
	assert.Equal(t, 5, l.WordLen())
}
