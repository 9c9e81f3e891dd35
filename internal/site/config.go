package site

import "strings"

// LayoutVariant selects one of the mutually exclusive homepage
// composition strategies.
type LayoutVariant string

const (
	LayoutStandard LayoutVariant = "standard"
	LayoutLinkhub  LayoutVariant = "linkhub"
	LayoutProfile  LayoutVariant = "profile"
)

// NormalizeLayoutVariant maps a raw config value to a known variant.
// Unknown or empty values fall back to the standard layout.
func NormalizeLayoutVariant(raw string) LayoutVariant {
	switch LayoutVariant(strings.ToLower(strings.TrimSpace(raw))) {
	case LayoutLinkhub:
		return LayoutLinkhub
	case LayoutProfile:
		return LayoutProfile
	default:
		return LayoutStandard
	}
}

// NewsletterMode decides where subscription forms post to. The mode is
// server-held configuration; clients never choose the routing.
type NewsletterMode string

const (
	NewsletterLocal    NewsletterMode = "local"
	NewsletterProvider NewsletterMode = "provider"
)

// Config is the site-wide configuration record, read once per build
// and passed by reference into every render call.
type Config struct {
	Name                  string `json:"site_name"`
	Tagline               string `json:"site_tagline"`
	MetaDescription       string `json:"meta_description"`
	ContactBlurb          string `json:"contact_blurb"`
	Domain                string `json:"domain"`
	NewsletterMode        string `json:"newsletter_mode"`
	NewsletterProviderURL string `json:"newsletter_provider_url"`
	LayoutVariantRaw      string `json:"layout_variant"`
	FooterNote            string `json:"footer_note"`
	Address               string `json:"address"`
}

// DefaultConfig returns the built-in configuration used when site.json
// is absent. The build proceeds on defaults; only the page table is
// mandatory.
func DefaultConfig() *Config {
	return &Config{
		Name:             "Artificial Life Institute",
		MetaDescription:  "Artificial Life Institute at the University of Vienna",
		NewsletterMode:   string(NewsletterLocal),
		LayoutVariantRaw: string(LayoutStandard),
	}
}

// Layout returns the normalized homepage layout variant.
func (c *Config) Layout() LayoutVariant {
	return NormalizeLayoutVariant(c.LayoutVariantRaw)
}

// NewsletterIsLocal reports whether subscription forms should post to
// the site's own endpoint rather than an external provider.
func (c *Config) NewsletterIsLocal() bool {
	mode := strings.TrimSpace(c.NewsletterMode)
	return mode == "" || mode == string(NewsletterLocal) || strings.TrimSpace(c.NewsletterProviderURL) == ""
}
