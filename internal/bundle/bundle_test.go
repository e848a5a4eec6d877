package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/dossier-builder/internal/types"
)

func writeBundleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidBundle(t *testing.T) {
	path := writeBundleFile(t, `{
		"sections": [
			{"kind": "generated", "section_type": "profile", "label": "Profil", "enabled": true, "order": 5},
			{"kind": "generated", "section_type": "cover", "label": "Deckblatt", "enabled": true, "order": 2}
		],
		"profile": {"name": "Frodo Beutlin", "class": "3a"}
	}`)

	b, err := Load(path)
	require.NoError(t, err)

	require.Len(t, b.Sections, 2)
	assert.Equal(t, "Frodo Beutlin", b.Profile.Name)

	// Normalization assigns ids and re-derives a dense order.
	assert.Equal(t, types.SectionCover, b.Sections[0].SectionType)
	assert.Equal(t, 0, b.Sections[0].Order)
	assert.Equal(t, types.SectionProfile, b.Sections[1].SectionType)
	assert.Equal(t, 1, b.Sections[1].Order)
	for _, s := range b.Sections {
		assert.NotEmpty(t, s.ID)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeBundleFile(t, `{"sections": [`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_SchemaViolation(t *testing.T) {
	path := writeBundleFile(t, `{
		"sections": [
			{"kind": "embedded", "section_type": "cover"}
		],
		"profile": {"name": "Frodo Beutlin"}
	}`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize_CoverOverride(t *testing.T) {
	b := &types.ExportBundle{
		Sections: []types.DossierSection{
			{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Label: "Deckblatt", Enabled: true},
			{ID: "s2", Kind: types.KindGenerated, SectionType: types.SectionProfile, Enabled: true, Order: 1},
		},
		Documents: []types.DossierDocument{
			{ID: "d1", Title: "Eigenes Deckblatt.pdf", IsCover: true},
		},
	}

	Normalize(b)

	cover := b.Sections[0]
	assert.Equal(t, types.KindUploaded, cover.Kind)
	assert.Equal(t, types.SectionUploaded, cover.SectionType)
	assert.Equal(t, "d1", cover.SourceID)
	assert.Equal(t, "Eigenes Deckblatt.pdf", cover.Label)
}

func TestNormalize_NoCoverDocumentLeavesSectionsAlone(t *testing.T) {
	b := &types.ExportBundle{
		Sections: []types.DossierSection{
			{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Enabled: true},
		},
	}

	Normalize(b)

	assert.Equal(t, types.KindGenerated, b.Sections[0].Kind)
	assert.Equal(t, types.SectionCover, b.Sections[0].SectionType)
}

func TestValidate_BadSectionKind(t *testing.T) {
	b := &types.ExportBundle{
		Sections: []types.DossierSection{
			{ID: "s1", Kind: "embedded", SectionType: types.SectionCover},
		},
		Profile: types.Profile{Name: "Frodo Beutlin"},
	}
	assert.Error(t, Validate(b))
}
