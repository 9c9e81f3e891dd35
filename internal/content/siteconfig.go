package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/sitegen/internal/site"
)

// LoadSiteConfig reads site.json. The file is optional; built-in
// defaults keep the build going when it is absent.
func LoadSiteConfig(path string) (*site.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No site config found, using defaults", "path", path)
			return site.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read site config: %w", err)
	}

	cfg := site.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if cfg.NewsletterMode == "" {
		cfg.NewsletterMode = string(site.NewsletterLocal)
	}
	return cfg, nil
}
