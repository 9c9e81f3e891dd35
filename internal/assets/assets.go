// Package assets emits the static files every generated site ships
// with: the stylesheet, the behavior script, generated placeholder
// images, and the standalone subscribe endpoint for plain static
// hosting.
package assets

import (
	_ "embed"
	"fmt"
	"html"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed files/style.css
var styleCSS []byte

//go:embed files/main.js
var mainJS []byte

//go:embed files/subscribe.php
var subscribePHP []byte

// PlaceholderImages maps generated SVG filenames to their labels.
// placeholder-hero.svg doubles as the default section image.
var PlaceholderImages = map[string]string{
	"placeholder-hero.svg":     "Warm abstract hero placeholder",
	"placeholder-studio.svg":   "Studio placeholder",
	"placeholder-lab.svg":      "Lab placeholder",
	"placeholder-portrait.svg": "Portrait placeholder",
	"placeholder-grid.svg":     "Project grid placeholder",
}

// PlaceholderSVG renders one labeled placeholder image.
func PlaceholderSVG(label string) string {
	safe := html.EscapeString(label)
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 600 400" role="img" aria-label="%s">
  <defs>
    <linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="#6b0f1a" stop-opacity="0.2" />
      <stop offset="100%%" stop-color="#e0b15a" stop-opacity="0.3" />
    </linearGradient>
  </defs>
  <rect width="600" height="400" fill="#f4ecea" />
  <rect x="40" y="40" width="520" height="320" fill="url(#g)" rx="26" />
  <circle cx="470" cy="130" r="70" fill="#6b0f1a" fill-opacity="0.16" />
  <rect x="120" y="230" width="240" height="18" rx="9" fill="#6b0f1a" fill-opacity="0.25" />
  <rect x="120" y="260" width="180" height="12" rx="6" fill="#0f0f0f" fill-opacity="0.2" />
  <text x="120" y="205" fill="#3e0a11" font-family="Georgia, serif" font-size="22">%s</text>
</svg>
`, safe, safe)
}

// Write materializes the static asset tree under outDir: css, js,
// placeholder images, the subscribe endpoint, and a data directory
// that static hosts must not serve.
func Write(outDir string) error {
	files := map[string][]byte{
		filepath.Join("assets", "css", "style.css"): styleCSS,
		filepath.Join("assets", "js", "main.js"):    mainJS,
		"subscribe.php":                             subscribePHP,
		filepath.Join("data", ".htaccess"):          []byte("Require all denied\n"),
	}
	for name, label := range PlaceholderImages {
		files[filepath.Join("assets", "img", name)] = []byte(PlaceholderSVG(label))
	}

	for rel, data := range files {
		target := filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return fmt.Errorf("create asset directory: %w", err)
		}
		if err := os.WriteFile(target, data, 0o640); err != nil {
			return fmt.Errorf("write asset %s: %w", rel, err)
		}
	}
	return nil
}

// CopyMedia copies user-provided media files into the image directory,
// preserving the subtree layout. A missing media directory is fine.
func CopyMedia(mediaDir, outDir string) (int, error) {
	if _, err := os.Stat(mediaDir); os.IsNotExist(err) {
		return 0, nil
	}

	imgDir := filepath.Join(outDir, "assets", "img")
	copied := 0
	err := filepath.WalkDir(mediaDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(mediaDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(imgDir, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return err
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copy media: %w", err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
