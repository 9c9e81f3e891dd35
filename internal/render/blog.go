package render

import (
	"fmt"
	"path"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// PostOutputPath returns the output location of a blog post document.
func PostOutputPath(post site.BlogPost) string {
	return path.Join("blog", post.Slug, "index.html")
}

// renderBlogIndex renders the post grid embedded in the blog page.
// The teaser is the first paragraph of the post body.
func (r *Renderer) renderBlogIndex(from string) string {
	if len(r.Posts) == 0 {
		return `<p class="muted">No posts yet.</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="post-grid">`)
	for _, post := range r.Posts {
		teaser := ""
		if parts := site.SplitParagraphs(post.Body); len(parts) > 0 {
			teaser = parts[0]
		}
		href := paths.Relative(from, PostOutputPath(post))
		fmt.Fprintf(&b, `<a class="post-card" href="%s">
  <p class="post-date">%s</p>
  <h3>%s</h3>
  <p>%s</p>
</a>`, esc(href), esc(post.Date), esc(post.Title), esc(teaser))
	}
	b.WriteString("</div>")
	return b.String()
}

// PostDocument assembles the complete document for one blog post.
func (r *Renderer) PostDocument(post site.BlogPost) string {
	from := PostOutputPath(post)
	backHref := paths.Relative(from, paths.OutputPath("blog"))

	body := fmt.Sprintf(`<article class="post">
  <div class="post-inner">
    <p class="eyebrow">Blog</p>
    <h1>%s</h1>
    <p class="post-date">%s</p>
    %s
    <p><a class="button ghost" href="%s">Back to all posts</a></p>
  </div>
</article>`, esc(post.Title), esc(post.Date), renderParagraphs(post.Body), esc(backHref))

	return r.document(post.Title, from, "blog", body)
}
