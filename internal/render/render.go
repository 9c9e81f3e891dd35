// Package render assembles the final HTML documents. Markup is built
// by direct string assembly from reusable fragments (head, header,
// hero, content sections, footer); every dynamic value passes through
// HTML escaping before insertion because all content originates from
// editable data files.
package render

import (
	"html"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// NavSlugs is the fixed candidate set for header navigation; only
// candidates present in the page table are rendered.
var NavSlugs = []string{"", "about", "research", "projects", "blog", "contact"}

const (
	stylesheetPath   = "assets/css/style.css"
	scriptPath       = "assets/js/main.js"
	imageDir         = "assets/img"
	defaultHeroImage = "placeholder-hero.svg"

	// SubscribeEndpoint is the relative path local newsletter forms
	// post to. The serve command answers the same path natively; the
	// emitted PHP file answers it on plain static hosting.
	SubscribeEndpoint = "subscribe.php"
)

// Renderer composes documents for one build. All fields are read-only
// during rendering; pages and posts can be rendered in any order once
// the path table is known.
type Renderer struct {
	Site  *site.Config
	Pages site.Pages
	Links []site.LinkEntry
	Posts []site.BlogPost

	known map[string]bool
}

// New builds a Renderer over loaded content.
func New(cfg *site.Config, pages site.Pages, links []site.LinkEntry, posts []site.BlogPost) *Renderer {
	return &Renderer{
		Site:  cfg,
		Pages: pages,
		Links: links,
		Posts: posts,
		known: pages.KnownSlugs(),
	}
}

func esc(s string) string { return html.EscapeString(s) }

func renderParagraphs(text string) string {
	parts := site.SplitParagraphs(text)
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("<p>")
		b.WriteString(esc(p))
		b.WriteString("</p>")
	}
	return b.String()
}

func renderBullets(text string) string {
	items := site.SplitBullets(text)
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, item := range items {
		b.WriteString("<li>")
		b.WriteString(esc(item))
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}

func (r *Renderer) resolveCTA(raw, from string) string {
	return paths.ResolveCTA(raw, r.known, from)
}

// logoText derives the header monogram from the site name's initials.
func (r *Renderer) logoText() string {
	var b strings.Builder
	for _, word := range strings.Fields(r.Site.Name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 3 {
			break
		}
	}
	if b.Len() == 0 {
		return "SITE"
	}
	return b.String()
}
