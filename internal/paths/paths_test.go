package paths

import (
	"path"
	"testing"
)

func TestNormalizeRootSynonyms(t *testing.T) {
	for _, raw := range []string{"", "/", "index", "home", " home ", " / "} {
		if got := Normalize(raw); got != RootSlug {
			t.Errorf("Normalize(%q) = %q, want root slug", raw, got)
		}
	}
}

func TestNormalizeStripsSlashes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"about", "about"},
		{"/about/", "about"},
		{" research ", "research"},
		{"About", "About"}, // case preserved
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOutputPathsDistinct(t *testing.T) {
	slugs := []string{"", "about", "research", "projects", "blog", "contact", "privacy"}
	seen := map[string]string{}
	for _, s := range slugs {
		p := OutputPath(s)
		if prev, dup := seen[p]; dup {
			t.Fatalf("OutputPath collision: %q and %q both map to %q", prev, s, p)
		}
		seen[p] = s
	}
	if OutputPath("") != "index.html" {
		t.Errorf("root output path = %q", OutputPath(""))
	}
	if OutputPath("about") != "about/index.html" {
		t.Errorf("about output path = %q", OutputPath("about"))
	}
}

func TestRelativeRoundTrip(t *testing.T) {
	outputs := []string{
		"index.html",
		"about/index.html",
		"contact/index.html",
		"blog/index.html",
		"blog/first-post/index.html",
		"assets/css/style.css",
		"assets/img/placeholder-hero.svg",
	}
	for _, from := range outputs {
		for _, to := range outputs {
			rel := Relative(from, to)
			joined := path.Clean(path.Join(path.Dir(from), rel))
			if joined != path.Clean(to) {
				t.Errorf("Relative(%q, %q) = %q; rejoined to %q", from, to, rel, joined)
			}
		}
	}
}

func TestRelativeDepths(t *testing.T) {
	cases := []struct{ from, to, want string }{
		{"index.html", "about/index.html", "about/index.html"},
		{"about/index.html", "index.html", "../index.html"},
		{"blog/first/index.html", "assets/css/style.css", "../../assets/css/style.css"},
		{"blog/first/index.html", "blog/index.html", "../index.html"},
		{"about/index.html", "contact/index.html", "../contact/index.html"},
	}
	for _, c := range cases {
		if got := Relative(c.from, c.to); got != c.want {
			t.Errorf("Relative(%q, %q) = %q, want %q", c.from, c.to, got, c.want)
		}
	}
}

func TestResolveCTA(t *testing.T) {
	known := map[string]bool{"": true, "about": true, "research": true, "contact": true}

	cases := []struct{ name, raw, from, want string }{
		{"empty", "", "index.html", ""},
		{"absolute http", "https://example.org/x", "index.html", "https://example.org/x"},
		{"mailto", "mailto:office@example.org", "index.html", "mailto:office@example.org"},
		{"fragment", "#newsletter", "index.html", "#newsletter"},
		{"known from root", "research", "index.html", "research/index.html"},
		{"known from nested", "research", "blog/first/index.html", "../../research/index.html"},
		{"root synonym", "home", "about/index.html", "../index.html"},
		{"unknown verbatim", "no-such-page", "index.html", "no-such-page"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveCTA(c.raw, known, c.from); got != c.want {
				t.Errorf("ResolveCTA(%q, from %q) = %q, want %q", c.raw, c.from, got, c.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"First Post", "first-post"},
		{"2024-05-01-opening", "2024-05-01-opening"},
		{"Hello,   World!", "hello-world"},
		{"Büro Nr. 7", "buro-nr-7"},
		{"???", "post"},
		{"", "post"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
