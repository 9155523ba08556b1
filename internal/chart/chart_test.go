package chart

import (
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func series(name string) Series {
	return Series{
		Name:  name,
		Title: "Time Complexity Analysis: linear_search",
		X:     []float64{20, 40, 60, 80, 100},
		Y:     []float64{0.0001, 0.0002, 0.0003, 0.0004, 0.0005},
	}
}

func TestPNGRenderer_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	r := NewPNGRenderer(dir)

	art, err := r.Render(context.Background(), series("linear_search_a"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "linear_search_a.png"), art.Path)
	assert.True(t, bytes.HasPrefix(art.PNG, pngMagic))

	onDisk, err := os.ReadFile(art.Path)
	require.NoError(t, err)
	assert.Equal(t, art.PNG, onDisk)

	decoded, err := base64.StdEncoding.DecodeString(art.Base64())
	require.NoError(t, err)
	assert.Equal(t, art.PNG, decoded)
}

func TestPNGRenderer_DistinctNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	r := NewPNGRenderer(dir)

	a, err := r.Render(context.Background(), series("bubble_sort_1"))
	require.NoError(t, err)
	b, err := r.Render(context.Background(), series("bubble_sort_2"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Path, b.Path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestPNGRenderer_SinglePoint(t *testing.T) {
	s := Series{Name: "one", Title: "one", X: []float64{50}, Y: []float64{0.001}}
	art, err := NewPNGRenderer(t.TempDir()).Render(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(art.PNG, pngMagic))
}

func TestPNGRenderer_RejectsBadInput(t *testing.T) {
	r := NewPNGRenderer(t.TempDir())

	_, err := r.Render(context.Background(), series("../escape"))
	assert.Error(t, err)

	_, err = r.Render(context.Background(), series(""))
	assert.Error(t, err)

	s := series("mismatch")
	s.Y = s.Y[:2]
	_, err = r.Render(context.Background(), s)
	assert.Error(t, err)

	_, err = r.Render(context.Background(), Series{Name: "empty"})
	assert.Error(t, err)
}
