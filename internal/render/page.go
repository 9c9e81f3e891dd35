package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// hero holds the resolved hero content of a page: the first section,
// with the page title as heading fallback when the page is empty.
type hero struct {
	heading  string
	bodyHTML string
	ctaHTML  string
	imageSrc string
}

func (r *Renderer) heroFor(page *site.Page, from string) hero {
	var first site.Section
	if len(page.Sections) > 0 {
		first = page.Sections[0]
	}

	heading := first.Heading
	if heading == "" {
		heading = page.Title
	}

	cta := ""
	if ctaURL := r.resolveCTA(first.CTAURL, from); first.CTAText != "" && ctaURL != "" {
		cta = fmt.Sprintf(`<a class="button" href="%s">%s</a>`, esc(ctaURL), esc(first.CTAText))
	}

	imageName := first.HeroImage
	if imageName == "" {
		imageName = defaultHeroImage
	}

	return hero{
		heading:  heading,
		bodyHTML: renderParagraphs(first.Body),
		ctaHTML:  cta,
		imageSrc: paths.Relative(from, imageDir+"/"+imageName),
	}
}

const heroMetricsHTML = `
      <div class="hero-metrics">
        <div><span>12+</span>Active research threads</div>
        <div><span>4</span>Cross-faculty labs</div>
        <div><span>20</span>Years of ALife history</div>
      </div>`

// renderHeroSection renders the shared hero block used by every page
// and by the standard and profile homepage variants. The metrics strip
// in the aside appears everywhere except the profile hero.
func (r *Renderer) renderHeroSection(h hero, asideTitle, asideBody string, metrics bool) string {
	metricsHTML := ""
	if metrics {
		metricsHTML = heroMetricsHTML
	}
	return fmt.Sprintf(`<section class="hero">
  <div class="hero-orbit"></div>
  <div class="hero-inner">
    <div>
      <p class="eyebrow">%s</p>
      <h1>%s</h1>
      <p class="subtitle">%s</p>
      %s
      <div class="hero-actions">%s</div>
    </div>
    <div class="hero-art">
      <figure class="image-frame"><img src="%s" alt="%s image" /></figure>
      <h3>%s</h3>
      <p>%s</p>%s
    </div>
  </div>
</section>`, esc(r.Site.Name), esc(h.heading), esc(r.Site.Tagline), h.bodyHTML, h.ctaHTML,
		esc(h.imageSrc), esc(h.heading), esc(asideTitle), esc(asideBody), metricsHTML)
}

// renderHomeOverview renders the auto-generated overview grid on the
// standard homepage: one card per non-root, non-blog, non-contact page
// among the nav candidates.
func (r *Renderer) renderHomeOverview(from string) string {
	var cards strings.Builder
	for _, slug := range NavSlugs {
		if slug == paths.RootSlug || slug == "blog" || slug == "contact" {
			continue
		}
		page, ok := r.Pages[slug]
		if !ok {
			continue
		}
		target := paths.Relative(from, paths.OutputPath(slug))
		fmt.Fprintf(&cards, `<a class="card" href="%s"><h3>%s</h3><p>Placeholder summary for %s.</p></a>`,
			esc(target), esc(page.Title), esc(page.Title))
	}
	return `<div class="card-grid">` + cards.String() + `</div>`
}

// renderLinkhubHome renders the single-column linkhub homepage: hero
// copy, the link list as vertical buttons, and the newsletter block.
// No section iteration happens in this variant.
func (r *Renderer) renderLinkhubHome(h hero, newsletter string) string {
	return fmt.Sprintf(`<section class="linkhub">
  <div class="linkhub-inner">
    <p class="eyebrow">%s</p>
    <h1>%s</h1>
    <p class="subtitle">%s</p>
    %s
    %s
    %s
  </div>
</section>`, esc(r.Site.Name), esc(h.heading), esc(r.Site.Tagline),
		renderParagraphs(r.Site.ContactBlurb), r.renderLinkhubLinks(), newsletter)
}

// renderProfileHome renders the profile homepage: hero with a profile
// aside, three fixed informational cards, and a fixed outputs list.
func (r *Renderer) renderProfileHome(h hero, newsletter string) string {
	heroHTML := r.renderHeroSection(h, "Institute profile", r.Site.ContactBlurb, false)
	return heroHTML + `
<section class="profile-section">
  <div class="profile-grid">
    <div class="profile-card"><h3>Core questions</h3><p>Placeholder for the institute's core research questions.</p></div>
    <div class="profile-card"><h3>Methods</h3><p>Placeholder for modeling, experimentation, and field integration.</p></div>
    <div class="profile-card"><h3>Community</h3><p>Placeholder for seminars, visitors, and collaborations.</p></div>
  </div>
</section>
<section class="profile-section">
  <div class="content-block reveal">
    <h2>Selected outputs</h2>
    <ul class="outputs-list">
      <li>Placeholder output: paper, dataset, or public demonstration.</li>
      <li>Placeholder output: workshop, symposium, or lecture series.</li>
      <li>Placeholder output: open-source tool or platform.</li>
    </ul>
    ` + newsletter + `
  </div>
</section>`
}

// PageDocument assembles the complete document for a page. Pages are
// independent: only the shared path table is consulted, never another
// page's rendered output.
func (r *Renderer) PageDocument(page *site.Page) string {
	from := paths.OutputPath(page.Slug)
	h := r.heroFor(page, from)

	var sections strings.Builder
	if len(page.Sections) > 1 {
		for _, section := range page.Sections[1:] {
			sections.WriteString(r.renderSection(section, from))
		}
	}

	newsletter := ""
	if page.Slug == paths.RootSlug || page.Slug == "contact" {
		newsletter = r.renderNewsletterForm(from)
	}

	var extras []string
	if page.Slug == "blog" {
		extras = append(extras, r.renderBlogIndex(from))
	}
	if newsletter != "" {
		extras = append(extras, newsletter)
	}
	if page.Slug == "contact" {
		extras = append(extras, r.renderTagList())
	}
	pageBody := ""
	if inner := strings.TrimSpace(strings.Join(extras, "\n")); inner != "" {
		pageBody = fmt.Sprintf(`<section class="page-body">
  <div class="content-block reveal">
    %s
  </div>
</section>`, inner)
	}

	var body string
	if page.Slug == paths.RootSlug {
		switch r.Site.Layout() {
		case site.LayoutLinkhub:
			body = r.renderLinkhubHome(h, newsletter)
		case site.LayoutProfile:
			body = r.renderProfileHome(h, newsletter)
		default:
			body = r.renderHeroSection(h, "Dynamic systems, grounded experiments",
				"Placeholder for a concise, compelling institute statement.", true) +
				"\n" + r.renderHomeOverview(from) + "\n" + sections.String() + "\n" + pageBody
		}
	} else {
		body = r.renderHeroSection(h, "Dynamic systems, grounded experiments",
			"Placeholder for a concise, compelling institute statement.", true) +
			"\n" + sections.String() + "\n" + pageBody
	}

	return r.document(page.Title, from, page.Slug, body)
}

// document wraps assembled body content in the shared page shell.
func (r *Renderer) document(title, from, currentSlug, body string) string {
	jsHref := paths.Relative(from, scriptPath)
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
%s
<body data-newsletter-mode="%s" data-newsletter-url="%s">
  <div class="page-shell">
    %s
    <main>
      %s
    </main>
    %s
  </div>
  <script src="%s"></script>
</body>
</html>
`, r.renderHead(title, from), esc(r.Site.NewsletterMode), esc(r.Site.NewsletterProviderURL),
		r.renderHeader(currentSlug, from), body, r.renderFooter(from), esc(jsHref))
}
