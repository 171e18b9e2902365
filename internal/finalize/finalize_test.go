package finalize

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mmcdole/showcraft/internal/config"
	"github.com/mmcdole/showcraft/internal/domain"
	"github.com/mmcdole/showcraft/internal/log"
	"github.com/mmcdole/showcraft/internal/store"
	"github.com/mmcdole/showcraft/internal/wizard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sample() domain.Series {
	return domain.Series{
		Title:       "The Chi",
		Description: "South Side drama",
		Poster:      "http://x",
		ReleaseDate: "2020-01-01",
		Rating:      8,
		Genres:      []string{"Drama"},
		Cast:        []string{"Jacob Latimore"},
		Seasons: []domain.Season{
			{Number: 1, Poster: "http://s1", Episodes: []domain.Episode{{Number: 1, Title: "Pilot"}}},
		},
	}
}

func TestNewSelectsBackend(t *testing.T) {
	catalog, err := store.Open("")
	require.NoError(t, err)

	tests := []struct {
		backend config.Backend
		want    any
	}{
		{config.BackendEcho, &Echo{}},
		{"", &Echo{}},
		{config.BackendBolt, &Catalog{}},
		{config.BackendFile, &Export{}},
	}
	for _, tt := range tests {
		f, err := New(config.CatalogConfig{Backend: tt.backend}, catalog, log.NullLogger())
		require.NoError(t, err)
		assert.IsType(t, tt.want, f, "backend %q", tt.backend)
	}

	_, err = New(config.CatalogConfig{Backend: "ftp"}, catalog, nil)
	assert.Error(t, err)

	_, err = New(config.CatalogConfig{Backend: config.BackendBolt}, nil, nil)
	assert.Error(t, err)
}

func TestEchoReturnsRecord(t *testing.T) {
	f, err := New(config.CatalogConfig{Backend: config.BackendEcho}, nil, log.NullLogger())
	require.NoError(t, err)

	got, err := f.Finalize(context.Background(), sample())
	require.NoError(t, err)
	if diff := cmp.Diff(sample(), got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEchoHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Echo{logger: log.NullLogger()}).Finalize(ctx, sample())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogStoresRecord(t *testing.T) {
	catalog, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer catalog.Close()

	f := &Catalog{catalog: catalog, logger: log.NullLogger()}
	got, err := f.Finalize(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	entries, err := catalog.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "The Chi", entries[0].Series.Title)
}

func TestCatalogPayloadMatchesInput(t *testing.T) {
	catalog, err := store.Open("")
	require.NoError(t, err)

	in := sample()
	in.Title = "  x<y and 5 > 3  "
	in.Description = "a<b>c\n&lt;b&gt;\n"

	f := &Catalog{catalog: catalog, logger: log.NullLogger()}
	got, err := f.Finalize(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

type failingCatalog struct{}

func (failingCatalog) Save(domain.Series) (string, error) { return "", errors.New("disk full") }
func (failingCatalog) Get(string) (domain.Series, error)  { return domain.Series{}, nil }

func TestCatalogFailureSurfacesAsSubmitError(t *testing.T) {
	f := &Catalog{catalog: failingCatalog{}, logger: log.NullLogger()}

	s := wizard.Submit(context.Background(), wizard.New(), f)
	assert.Equal(t, domain.MsgSubmitFailed, s.Status.Error())
	assert.False(t, s.Status.Loading())
}

func TestExportWritesJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	f := &Export{dir: dir, logger: log.NullLogger()}

	got, err := f.Finalize(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	data, err := os.ReadFile(filepath.Join(dir, "the-chi.json"))
	require.NoError(t, err)

	var decoded domain.Series
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sample(), decoded)

	// Second export replaces the file in place.
	updated := sample()
	updated.Rating = 9
	_, err = f.Finalize(context.Background(), updated)
	require.NoError(t, err)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestExportUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	f := &Export{dir: filepath.Join(blocker, "exports"), logger: log.NullLogger()}
	_, err := f.Finalize(context.Background(), sample())
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"The Chi":              "the-chi",
		"  Mr. Robot  ":        "mr-robot",
		"Love, Death & Robots": "love-death-robots",
		"Señor Ávila":          "señor-ávila",
		"???":                  "untitled",
		"":                     "untitled",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), "slug of %q", in)
	}
}
