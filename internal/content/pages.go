// Package content loads the build's input files: the page/section
// table, the site configuration object, the link list, and flat-file
// blog posts. Loading happens entirely before rendering; the returned
// values are not mutated afterwards.
package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/sitegen/internal/paths"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// LoadPages reads the page/section table. The page table is the one
// mandatory input: a missing file aborts the build.
func LoadPages(path string) (site.Pages, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing pages file: %s", path)
		}
		return nil, fmt.Errorf("open pages file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pages, err := readPages(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return pages, nil
}

func readPages(r io.Reader) (site.Pages, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; missing cells read as empty

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := columnIndex(header)

	pages := site.Pages{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		slug := paths.Normalize(field("page_slug"))
		order, _ := strconv.Atoi(field("order"))

		page, ok := pages[slug]
		if !ok {
			page = &site.Page{Slug: slug, Title: defaultPageTitle(slug)}
			pages[slug] = page
		}
		if title := field("page_title"); title != "" {
			page.Title = title
		}
		page.Sections = append(page.Sections, site.Section{
			PageSlug:  slug,
			Order:     order,
			Heading:   field("heading"),
			Body:      field("body"),
			Bullets:   field("bullets"),
			CTAText:   field("cta_text"),
			CTAURL:    field("cta_url"),
			HeroImage: field("hero_image"),
			ID:        field("section_id"),
		})
	}

	for _, page := range pages {
		sort.SliceStable(page.Sections, func(i, j int) bool {
			return page.Sections[i].Order < page.Sections[j].Order
		})
	}
	return pages, nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	return cols
}

// defaultPageTitle title-cases the slug: "research" -> "Research",
// "about-us" -> "About-Us". Every letter starting a run of letters is
// upper-cased, the rest lower-cased.
func defaultPageTitle(slug string) string {
	if slug == paths.RootSlug {
		return "Home"
	}
	var b strings.Builder
	inWord := false
	for _, r := range slug {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			inWord = false
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			inWord = true
		}
	}
	return b.String()
}
