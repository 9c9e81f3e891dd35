// Package linkverify checks that relative links inside a generated
// site tree resolve to files that were actually written.
package linkverify

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Link is one reference extracted from a generated document.
type Link struct {
	URL       string // raw attribute value
	Tag       string // a, img, script, link, form
	Attribute string // href, src, action
}

// Broken describes a relative link whose target file does not exist.
type Broken struct {
	Page   string // output-relative path of the document
	URL    string // the offending link as written
	Target string // output-relative path it resolves to
}

func (b Broken) String() string {
	return fmt.Sprintf("%s: %s -> %s", b.Page, b.URL, b.Target)
}

// ExtractLinks parses an HTML document and returns every link-bearing
// attribute, including form actions.
func ExtractLinks(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a", "link":
				if href := getAttr(n, "href"); href != "" {
					links = append(links, Link{URL: href, Tag: n.Data, Attribute: "href"})
				}
			case "img", "script":
				if src := getAttr(n, "src"); src != "" {
					links = append(links, Link{URL: src, Tag: n.Data, Attribute: "src"})
				}
			case "form":
				if action := getAttr(n, "action"); action != "" {
					links = append(links, Link{URL: action, Tag: "form", Attribute: "action"})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// shouldVerify reports whether a link is a site-relative reference.
// External URLs, anchors, and special protocols are out of scope.
func shouldVerify(raw string) bool {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return false
	}
	if strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "tel:") ||
		strings.HasPrefix(raw, "javascript:") || strings.HasPrefix(raw, "data:") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// VerifyTree walks every .html file under root and resolves all
// relative links against the files on disk. It returns the broken
// references found; an empty slice means the tree is self-consistent.
func VerifyTree(root string) ([]Broken, error) {
	var broken []Broken

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		links, err := ExtractLinks(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("extract links from %s: %w", relSlash, err)
		}

		for _, link := range links {
			if !shouldVerify(link.URL) {
				continue
			}
			raw := link.URL
			if i := strings.IndexAny(raw, "?#"); i >= 0 {
				raw = raw[:i]
			}
			if raw == "" {
				continue
			}
			target := path.Clean(path.Join(path.Dir(relSlash), raw))
			if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(target))); err != nil {
				broken = append(broken, Broken{Page: relSlash, URL: link.URL, Target: target})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify tree: %w", err)
	}
	return broken, nil
}
