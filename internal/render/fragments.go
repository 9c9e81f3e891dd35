package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

func (r *Renderer) renderHead(title, from string) string {
	cssHref := paths.Relative(from, stylesheetPath)
	return fmt.Sprintf(`<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <meta name="description" content="%s" />
  <link rel="stylesheet" href="%s" />
</head>`, esc(title), esc(r.Site.MetaDescription), esc(cssHref))
}

// renderHeader renders the top navigation. One entry per candidate
// slug present in the page table, linked relative to the current
// output path, with the current page marked active.
func (r *Renderer) renderHeader(currentSlug, from string) string {
	var nav strings.Builder
	for _, slug := range NavSlugs {
		page, ok := r.Pages[slug]
		if !ok {
			continue
		}
		href := paths.Relative(from, paths.OutputPath(slug))
		active := ""
		if slug == currentSlug {
			active = "active"
		}
		fmt.Fprintf(&nav, `<a class="%s" href="%s">%s</a>`, active, esc(href), esc(page.Title))
	}

	ctaHref := "#"
	if _, ok := r.Pages["contact"]; ok {
		ctaHref = paths.Relative(from, paths.OutputPath("contact"))
	}
	homeHref := paths.Relative(from, paths.OutputPath(paths.RootSlug))

	return fmt.Sprintf(`<header class="site-header">
  <a class="logo" href="%s">%s</a>
  <nav class="nav">%s</nav>
  <a class="cta" href="%s">Get in touch</a>
</header>`, esc(homeHref), esc(r.logoText()), nav.String(), esc(ctaHref))
}

func (r *Renderer) renderFooter(from string) string {
	var legal strings.Builder
	for _, slug := range []string{"privacy", "imprint"} {
		page, ok := r.Pages[slug]
		if !ok {
			continue
		}
		href := paths.Relative(from, paths.OutputPath(slug))
		fmt.Fprintf(&legal, `<a href="%s">%s</a>`, esc(href), esc(page.Title))
	}

	domain := esc(r.Site.Domain)
	return fmt.Sprintf(`<footer class="site-footer">
  <div class="footer-grid">
    <div>
      <p class="footer-title">%s</p>
      <p>%s</p>
      <p>%s</p>
      <p><a href="%s">%s</a></p>
    </div>
    <div>
      <p class="footer-title">Digital presence</p>
      %s
    </div>
    <div>
      <p class="footer-title">Legal</p>
      <div class="footer-links">%s</div>
    </div>
  </div>
</footer>`, esc(r.Site.Name), esc(r.Site.Address), esc(r.Site.FooterNote), domain, domain,
		r.renderTagList(), legal.String())
}

// renderTagList renders the link list as footer/contact tags.
func (r *Renderer) renderTagList() string {
	if len(r.Links) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="tag-list">`)
	for _, link := range r.Links {
		class := "tag primary"
		if link.Kind == site.LinkKindPlaceholder {
			class = "tag"
		}
		fmt.Fprintf(&b, `<a class="%s" href="%s" rel="noopener">%s</a>`, class, esc(link.URL), esc(link.Label))
	}
	b.WriteString("</div>")
	return b.String()
}

// renderLinkhubLinks renders the link list as the vertical button list
// used by the linkhub homepage variant.
func (r *Renderer) renderLinkhubLinks() string {
	if len(r.Links) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="linkhub-links">`)
	for _, link := range r.Links {
		class := "linkhub-link"
		if link.Kind == site.LinkKindPlaceholder {
			class = "linkhub-link placeholder"
		}
		fmt.Fprintf(&b, `<a class="%s" href="%s" rel="noopener">%s</a>`, class, esc(link.URL), esc(link.Label))
	}
	b.WriteString("</div>")
	return b.String()
}

// renderNewsletterForm renders the subscription block. The endpoint is
// decided here, server-side: the local subscribe path unless a
// provider is configured.
func (r *Renderer) renderNewsletterForm(from string) string {
	endpoint := r.Site.NewsletterProviderURL
	if r.Site.NewsletterIsLocal() {
		endpoint = paths.Relative(from, SubscribeEndpoint)
	}
	return fmt.Sprintf(`<div class="newsletter" id="newsletter">
  <div>
    <h3>Newsletter</h3>
    <p>Subscribe for updates, events, and research highlights.</p>
  </div>
  <form class="newsletter-form" data-newsletter-form action="%s" method="post">
    <label class="sr-only" for="newsletter-email">Email</label>
    <input id="newsletter-email" name="email" type="email" placeholder="you@example.org" required />
    <button class="button" type="submit">Subscribe</button>
    <p class="form-status" aria-live="polite"></p>
  </form>
</div>`, esc(endpoint))
}

// renderSection renders one non-hero content block.
func (r *Renderer) renderSection(section site.Section, from string) string {
	cta := ""
	ctaText := section.CTAText
	if ctaURL := r.resolveCTA(section.CTAURL, from); ctaText != "" && ctaURL != "" {
		cta = fmt.Sprintf(`<a class="button ghost" href="%s">%s</a>`, esc(ctaURL), esc(ctaText))
	}

	imageName := section.HeroImage
	if imageName == "" {
		imageName = defaultHeroImage
	}
	imageSrc := paths.Relative(from, imageDir+"/"+imageName)
	image := fmt.Sprintf(`<figure class="image-frame"><img src="%s" alt="%s image" /></figure>`,
		esc(imageSrc), esc(section.Heading))

	return fmt.Sprintf(`<section class="content-section" id="%s">
  <div class="content-grid">
    <div>
      <h2>%s</h2>
      %s
      %s
      %s
    </div>
    %s
  </div>
</section>`, esc(section.ID), esc(section.Heading), renderParagraphs(section.Body),
		renderBullets(section.Bullets), cta, image)
}
