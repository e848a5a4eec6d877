package delivery

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestedFilename_ReplacesSpaces(t *testing.T) {
	assert.Equal(t, "Bewerbungsdossier_Frodo_Beutlin.pdf", SuggestedFilename("Frodo Beutlin"))
}

func TestSuggestedFilename_EmptyName(t *testing.T) {
	assert.Equal(t, "Bewerbungsdossier.pdf", SuggestedFilename("   "))
}

func TestSuggestedFilename_StripsUnsafeCharacters(t *testing.T) {
	assert.Equal(t, "Bewerbungsdossier_a_b.pdf", SuggestedFilename("a/ \\b"))
}

func TestWriteFile_New(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, "out.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
}

func TestWriteFile_CollisionAppendsSuffix(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteFile(dir, "out.pdf", []byte("one"))
	require.NoError(t, err)
	second, err := WriteFile(dir, "out.pdf", []byte("two"))
	require.NoError(t, err)
	third, err := WriteFile(dir, "out.pdf", []byte("three"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "out.pdf"), first)
	assert.Equal(t, filepath.Join(dir, "out (1).pdf"), second)
	assert.Equal(t, filepath.Join(dir, "out (2).pdf"), third)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
}

func TestServeDownload_Headers(t *testing.T) {
	rec := httptest.NewRecorder()

	err := ServeDownload(rec, "Bewerbungsdossier_Test.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Bewerbungsdossier_Test.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "9", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF-fake", rec.Body.String())
}
