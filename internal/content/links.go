package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/site"
)

// LoadLinks reads the site's link list. The file is optional; a
// missing list renders nothing and is not an error.
func LoadLinks(path string) ([]site.LinkEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No link list found, continuing without", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("open links file: %w", err)
	}
	defer func() { _ = f.Close() }()

	links, err := readLinks(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return links, nil
}

func readLinks(r io.Reader) ([]site.LinkEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := columnIndex(header)

	var links []site.LinkEntry
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

		label := field("label")
		if label == "" {
			continue
		}
		order, _ := strconv.Atoi(field("order"))
		kind := site.LinkKindNormal
		if field("kind") == string(site.LinkKindPlaceholder) {
			kind = site.LinkKindPlaceholder
		}
		links = append(links, site.LinkEntry{
			Label: label,
			URL:   field("url"),
			Kind:  kind,
			Order: order,
		})
	}

	sort.SliceStable(links, func(i, j int) bool { return links[i].Order < links[j].Order })
	return links, nil
}
