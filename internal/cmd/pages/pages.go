// Package pages parses pages command flags and starts the HTTP service.
package pages

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/mrbrightsides/rantai-pages/internal/platform/cmd"
	"github.com/mrbrightsides/rantai-pages/internal/platform/logging"
	pagesservice "github.com/mrbrightsides/rantai-pages/internal/services/pages"
	"github.com/mrbrightsides/rantai-pages/internal/services/pages/site"
)

// Config holds pages command configuration.
type Config struct {
	HTTPAddr      string `env:"RANTAI_PAGES_HTTP_ADDR"         envDefault:"localhost:8501"`
	SiteConfig    string `env:"RANTAI_PAGES_SITE_CONFIG"`
	CacheSize     int    `env:"RANTAI_PAGES_CACHE_SIZE"        envDefault:"64"`
	LogFile       string `env:"RANTAI_PAGES_LOG_FILE"`
	LogMaxSizeMB  int    `env:"RANTAI_PAGES_LOG_MAX_SIZE_MB"   envDefault:"10"`
	LogMaxAgeDays int    `env:"RANTAI_PAGES_LOG_MAX_AGE_DAYS"  envDefault:"7"`
	LogMaxBackups int    `env:"RANTAI_PAGES_LOG_MAX_BACKUPS"   envDefault:"3"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SiteConfig, "site", cfg.SiteConfig, "site TOML file (empty uses the built-in site)")
	fs.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "rendered page cache entries (0 disables)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (empty writes to stderr)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadSite returns the site at path, or the built-in site when path is empty.
func LoadSite(path string) (*site.Site, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		s, err := site.Default()
		if err != nil {
			return nil, fmt.Errorf("load built-in site: %w", err)
		}
		return s, nil
	}
	s, err := site.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load site %s: %w", path, err)
	}
	return s, nil
}

// Run loads the site and serves it until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	out, closer, err := logging.Writer(logging.Options{
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxAgeDays: cfg.LogMaxAgeDays,
		MaxBackups: cfg.LogMaxBackups,
	})
	if err != nil {
		return fmt.Errorf("open log output: %w", err)
	}
	defer closer.Close()
	log.SetOutput(out)

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePages, func(ctx context.Context) error {
		s, err := LoadSite(cfg.SiteConfig)
		if err != nil {
			return err
		}
		server, err := pagesservice.NewServer(ctx, pagesservice.Config{
			HTTPAddr:  cfg.HTTPAddr,
			Site:      s,
			CacheSize: cfg.CacheSize,
			Logger:    log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init pages server: %w", err)
		}
		defer server.Close()

		log.Printf("serving site=%s pages=%d addr=%s", s.Name(), len(s.Pages()), server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve pages: %w", err)
		}
		return nil
	})
}
