// Package site defines the content model a build operates on: pages
// with ordered sections, the site-wide configuration record, the link
// list, and blog posts. All values are created once when content is
// loaded and held immutably for the duration of a single build.
package site

// Section is one content block of a page. A section has no identity
// beyond its position in its page's ordered sequence; the first
// section of every page doubles as that page's hero.
type Section struct {
	PageSlug  string
	Order     int
	Heading   string
	Body      string
	Bullets   string // pipe-delimited list items, optional
	CTAText   string
	CTAURL    string
	HeroImage string
	ID        string
}

// Page is a renderable page, identified by its normalized slug (the
// empty slug is the home page).
type Page struct {
	Slug     string
	Title    string
	Sections []Section
}

// Pages indexes every known page by slug. The key set is fixed before
// any link is resolved (load-then-render).
type Pages map[string]*Page

// KnownSlugs returns the slug set used for CTA resolution.
func (p Pages) KnownSlugs() map[string]bool {
	known := make(map[string]bool, len(p))
	for slug := range p {
		known[slug] = true
	}
	return known
}

// LinkKind classifies a link-list entry.
type LinkKind string

const (
	LinkKindNormal      LinkKind = "normal"
	LinkKindPlaceholder LinkKind = "placeholder"
)

// LinkEntry is one row of the site's link list.
type LinkEntry struct {
	Label string
	URL   string
	Kind  LinkKind
	Order int
}

// BlogPost is a parsed flat-file post. Slug derives from the source
// filename stem and is unique within a build.
type BlogPost struct {
	Title string
	Date  string // YYYY-MM-DD
	Body  string
	Slug  string
}
