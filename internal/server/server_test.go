package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/dossier-builder/internal/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(Config{Port: 0})
	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleExport_ValidBundle(t *testing.T) {
	ts := newTestServer(t)

	b := types.ExportBundle{
		Sections: []types.DossierSection{
			{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Label: "Deckblatt", Enabled: true, Order: 0},
			{ID: "s2", Kind: types.KindGenerated, SectionType: types.SectionProfile, Label: "Profil", Enabled: true, Order: 1},
		},
		Profile: types.Profile{Name: "Frodo Beutlin"},
	}

	resp := postJSON(t, ts.URL+"/export", b)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "2", resp.Header.Get("X-Dossier-Pages"))
	assert.Equal(t, "0", resp.Header.Get("X-Dossier-Skipped"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Bewerbungsdossier_Frodo_Beutlin.pdf")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestHandleExport_InvalidJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/export", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExport_NoSections(t *testing.T) {
	ts := newTestServer(t)

	b := types.ExportBundle{
		Sections: []types.DossierSection{
			{ID: "s1", Kind: types.KindGenerated, SectionType: types.SectionCover, Enabled: false},
		},
		Profile: types.Profile{Name: "Frodo Beutlin"},
	}

	resp := postJSON(t, ts.URL+"/export", b)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleExport_BadSectionKind(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/export", "application/json", bytes.NewReader([]byte(`{
		"sections": [{"id": "s1", "kind": "embedded", "section_type": "cover", "enabled": true}],
		"profile": {"name": "Frodo Beutlin"}
	}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleRadar_ReturnsPNG(t *testing.T) {
	ts := newTestServer(t)

	req := radarRequest{
		Categories: []types.CompetencyCategory{
			{
				Name:  "Selbstkompetenz",
				Color: "#3B82F6",
				Competencies: []types.Competency{
					{ID: "c1", Name: "Ausdauer", Level: 3},
				},
			},
		},
		Size: 128,
	}

	resp := postJSON(t, ts.URL+"/radar", req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	img, err := png.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestHandleRadar_InvalidJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/radar", "application/json", bytes.NewReader([]byte("[")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
