package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const examplePages = `page_slug,order,page_title,heading,body,bullets,cta_text,cta_url,hero_image,section_id
home,1,Home,Artificial Life Institute,"Placeholder introduction for the institute.\n\nReplace this text in pages.csv.",,Explore research,research,,intro
home,2,,What we do,"Placeholder summary of ongoing work.",Modeling|Experiments|Field work,,,,focus
about,1,About,Who we are,"Placeholder text about the team and its mission.",,,,,who
research,1,Research,Current directions,"Placeholder description of research themes.",,,,,themes
projects,1,Projects,Selected projects,"Placeholder overview of projects.",,,,,selected
blog,1,Blog,Notes and updates,"Short posts from the lab.",,,,,notes
contact,1,Contact,Get in touch,"Placeholder contact text. Email us or subscribe below.",,,,,reach
privacy,1,Privacy,Privacy policy,"Placeholder privacy policy.",,,,,policy
imprint,1,Imprint,Imprint,"Placeholder imprint.",,,,,imprint
`

const exampleLinks = `label,url,kind,order
Mastodon,https://example.org/@institute,normal,1
Newsletter archive,#,placeholder,2
`

const exampleSite = `{
  "site_name": "Artificial Life Institute",
  "site_tagline": "Studying living systems, synthetic and natural",
  "meta_description": "Placeholder description for search engines.",
  "contact_blurb": "Placeholder blurb shown on the linkhub layout.",
  "domain": "https://example.org",
  "newsletter_mode": "local",
  "layout_variant": "standard",
  "footer_note": "Placeholder footer note.",
  "address": "1 Example Street, Example City"
}
`

const examplePost = `Title: Welcome to the lab notebook
Date: 2024-01-15

This is a placeholder post. Drop plain text files into the blog
directory; an optional Title and Date header line is recognized.

Each blank-line separated block becomes a paragraph.
`

// scaffoldContent writes starter content files, skipping any that
// already exist.
func scaffoldContent(dir string) error {
	files := map[string]string{
		"pages.csv":                   examplePages,
		"links.csv":                   exampleLinks,
		"site.json":                   exampleSite,
		"blog/2024-01-15-welcome.txt": examplePost,
	}

	for rel, data := range files {
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if _, err := os.Stat(target); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return fmt.Errorf("create content directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(data), 0o640); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "media"), 0o750); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}
	return nil
}
