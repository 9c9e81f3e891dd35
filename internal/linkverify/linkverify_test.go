package linkverify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	doc := `<html><head><link rel="stylesheet" href="assets/css/style.css"></head>
<body>
<a href="about/index.html">About</a>
<img src="assets/img/hero.svg">
<form action="subscribe.php" method="post"></form>
<script src="assets/js/main.js"></script>
</body></html>`

	links, err := ExtractLinks(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, links, 5)

	urls := map[string]bool{}
	for _, l := range links {
		urls[l.URL] = true
	}
	assert.True(t, urls["about/index.html"])
	assert.True(t, urls["subscribe.php"], "form actions are extracted too")
}

func TestVerifyTree(t *testing.T) {
	root := t.TempDir()
	write := func(rel, data string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}

	write("assets/css/style.css", "body{}")
	write("index.html", `<a href="about/index.html">x</a><link href="assets/css/style.css">`)
	write("about/index.html", `<a href="../index.html">home</a><a href="../missing/index.html">gone</a>`)

	broken, err := VerifyTree(root)
	require.NoError(t, err)
	require.Len(t, broken, 1)
	assert.Equal(t, "about/index.html", broken[0].Page)
	assert.Equal(t, "missing/index.html", broken[0].Target)
}

func TestVerifyTreeSkipsExternalAndAnchors(t *testing.T) {
	root := t.TempDir()
	doc := `<a href="https://example.org/x">e</a><a href="#top">t</a><a href="mailto:a@b.c">m</a>`
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(doc), 0o600))

	broken, err := VerifyTree(root)
	require.NoError(t, err)
	assert.Empty(t, broken)
}
