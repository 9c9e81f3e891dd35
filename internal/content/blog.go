package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// LoadPosts reads every *.txt file in the blog directory. The
// directory is optional. Posts are returned sorted by date descending
// with ties broken by stable input (filename) order.
func LoadPosts(dir string) ([]site.BlogPost, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No blog directory found, continuing without posts", "dir", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("read blog directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".txt") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var posts []site.BlogPost
	for _, name := range names {
		post, err := ParsePost(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	dedupeSlugs(posts)

	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })
	return posts, nil
}

// ParsePost parses one flat-text post. Header lines before the first
// blank line may carry "Title:" and "Date:"; a "Body:" line also ends
// the header. Malformed header lines are ignored. A missing title
// falls back to the filename stem, a missing date to the file's
// last-modified day. No post is ever skipped for malformed content.
func ParsePost(path string) (site.BlogPost, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return site.BlogPost{}, fmt.Errorf("read post %s: %w", path, err)
	}

	var (
		title, date string
		bodyLines   []string
		inBody      bool
	)
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if !inBody && strings.TrimSpace(line) == "" {
			inBody = true
			continue
		}
		if !inBody {
			switch {
			case strings.HasPrefix(line, "Title:"):
				title = strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
			case strings.HasPrefix(line, "Date:"):
				date = strings.TrimSpace(strings.TrimPrefix(line, "Date:"))
			case strings.HasPrefix(line, "Body:"):
				inBody = true
			}
			continue
		}
		bodyLines = append(bodyLines, line)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if title == "" {
		title = stem
	}
	if date == "" {
		info, err := os.Stat(path)
		if err != nil {
			return site.BlogPost{}, fmt.Errorf("stat post %s: %w", path, err)
		}
		date = info.ModTime().Format("2006-01-02")
	}

	return site.BlogPost{
		Title: title,
		Date:  date,
		Body:  strings.TrimSpace(strings.Join(bodyLines, "\n")),
		Slug:  paths.Slugify(stem),
	}, nil
}

// dedupeSlugs resolves filename-derived slug collisions: the first
// post (input order) keeps the bare slug, later ones get -2, -3, ...
// suffixes. Nothing is overwritten and no post is dropped.
func dedupeSlugs(posts []site.BlogPost) {
	count := map[string]int{}
	for i := range posts {
		slug := posts[i].Slug
		count[slug]++
		if n := count[slug]; n > 1 {
			posts[i].Slug = fmt.Sprintf("%s-%d", slug, n)
			slog.Warn("Duplicate blog slug, suffixing",
				"slug", slug, "resolved", posts[i].Slug, "title", posts[i].Title)
		}
	}
}
