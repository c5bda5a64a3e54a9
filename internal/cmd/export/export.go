// Package export parses export command flags and writes a static copy of
// the site.
package export

import (
	"context"
	"flag"
	"fmt"
	"log"

	pagescmd "github.com/mrbrightsides/rantai-pages/internal/cmd/pages"
	entrypoint "github.com/mrbrightsides/rantai-pages/internal/platform/cmd"
	pagesservice "github.com/mrbrightsides/rantai-pages/internal/services/pages"
)

// Config holds export command configuration.
type Config struct {
	SiteConfig string `env:"RANTAI_PAGES_SITE_CONFIG"`
	OutDir     string `env:"RANTAI_PAGES_EXPORT_DIR" envDefault:"dist"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.SiteConfig, "site", cfg.SiteConfig, "site TOML file (empty uses the built-in site)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run renders every page into cfg.OutDir.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceExport, func(ctx context.Context) error {
		s, err := pagescmd.LoadSite(cfg.SiteConfig)
		if err != nil {
			return err
		}
		written, err := pagesservice.Export(ctx, s, cfg.OutDir)
		if err != nil {
			return fmt.Errorf("export site: %w", err)
		}
		log.Printf("exported site=%s files=%d dir=%s", s.Name(), len(written), cfg.OutDir)
		return nil
	})
}
