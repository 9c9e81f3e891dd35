package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/history"
)

func writeContent(t *testing.T, dir string) {
	t.Helper()
	write := func(rel, data string) {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}

	write("pages.csv",
		"page_slug,order,page_title,heading,body,cta_text,cta_url\n"+
			"home,1,Welcome,Hello,Intro paragraph.,Read more,about\n"+
			"about,1,About,Who we are,About text.,,\n"+
			"contact,1,Contact,Reach us,Contact text.,,\n"+
			"blog,1,Blog,Notes,Blog intro.,,\n")
	write("site.json", `{"site_name":"Test Institute","newsletter_mode":"local"}`)
	write("links.csv", "label,url,kind,order\nMastodon,https://example.org/@x,normal,1\n")
	write("blog/2024-06-01-first.txt", "Title: First post\nDate: 2024-06-01\n\nBody paragraph.")
	write("media/photo.png", "png-bytes")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	base := t.TempDir()
	contentDir := filepath.Join(base, "content")
	writeContent(t, contentDir)

	cfg := &config.Config{}
	cfg.Content.Dir = contentDir
	cfg.Content.BlogDir = filepath.Join(contentDir, "blog")
	cfg.Content.MediaDir = filepath.Join(contentDir, "media")
	cfg.Output.Directory = filepath.Join(base, "site")
	return cfg
}

func TestBuildEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	store, err := history.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	g := NewGenerator(cfg, WithHistory(store))
	report, err := g.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "success", report.Outcome)
	assert.Equal(t, 4, report.RenderedPages)
	assert.Equal(t, 1, report.RenderedPosts)
	assert.Equal(t, 1, report.CopiedMedia)
	assert.Zero(t, report.BrokenLinks)
	assert.NotEmpty(t, report.BuildID)

	for _, rel := range []string{
		"index.html",
		"about/index.html",
		"blog/index.html",
		"blog/2024-06-01-first/index.html",
		"assets/css/style.css",
		"assets/img/placeholder-hero.svg",
		"assets/img/photo.png",
		"subscribe.php",
	} {
		_, err := os.Stat(filepath.Join(cfg.Output.Directory, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}

	// no staging leftovers beside the output
	entries, err := os.ReadDir(filepath.Dir(cfg.Output.Directory))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), "staging")
	}

	recorded, err := store.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, report.BuildID, recorded[0].BuildID)
	assert.Equal(t, "success", recorded[0].Outcome)
}

func TestBuildReplacesPreviousOutput(t *testing.T) {
	cfg := testConfig(t)
	g := NewGenerator(cfg)

	_, err := g.Build(context.Background())
	require.NoError(t, err)

	stale := filepath.Join(cfg.Output.Directory, "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))

	_, err = g.Build(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "rebuild fully clears the previous output")
}

func TestBuildMissingPagesIsFatal(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(filepath.Join(cfg.Content.Dir, "pages.csv")))

	g := NewGenerator(cfg)
	report, err := g.Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed", report.Outcome)
	assert.Equal(t, StageErrorFatal, report.StageErrorKinds[StageLoad])

	_, statErr := os.Stat(cfg.Output.Directory)
	assert.True(t, os.IsNotExist(statErr), "failed builds never touch the output directory")
}

func TestBuildCanceled(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator(cfg)
	report, err := g.Build(ctx)
	require.Error(t, err)
	assert.Equal(t, "canceled", report.Outcome)
}
