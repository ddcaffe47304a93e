package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Upstream API
	PublicationsURL string  `long:"publications-url" env:"PUBLICATIONS_URL" default:"https://serasa-test-back.onrender.com/api/publications" description:"Endpoint returning the publications JSON array"`
	AuthorsURL      string  `long:"authors-url" env:"AUTHORS_URL" default:"https://serasa-test-back.onrender.com/api/authors" description:"Endpoint returning the authors JSON array"`
	UserAgent       string  `long:"user-agent" env:"USER_AGENT" default:"PubFront/1.0" description:"User agent string for HTTP requests"`
	FetchTimeout    int     `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Upstream request timeout in seconds"`
	RateLimit       float64 `long:"rate-limit" env:"RATE_LIMIT" default:"5" description:"Maximum upstream requests per second (0 disables)"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl         string `long:"base-url" env:"BASE_URL" description:"Public base URL for the site (e.g., https://blog.example.com)"`
	SiteFile        string `long:"site-file" env:"SITE_FILE" default:"./site.yml" description:"Site chrome configuration file"`
	DBPath          string `long:"db-path" env:"DB_PATH" default:"./pubfront.db" description:"SQLite database file for load history"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for data loading"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"0" description:"Reload interval in seconds (0 loads once at startup)"`
	SidebarSize     int    `long:"sidebar-size" env:"SIDEBAR_SIZE" default:"5" description:"Number of publications in the latest news sidebar"`
	Locale          string `long:"locale" env:"LOCALE" default:"en" description:"BCP 47 locale used to collate categories"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone used to interpret publication dates (e.g., UTC, America/Sao_Paulo)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		PublicationsURL: raw.PublicationsURL,
		AuthorsURL:      raw.AuthorsURL,
		UserAgent:       raw.UserAgent,
		FetchTimeout:    raw.FetchTimeout,
		RateLimit:       raw.RateLimit,
		Port:            raw.Port,
		BaseUrl:         raw.BaseUrl,
		SiteFile:        raw.SiteFile,
		DBPath:          raw.DBPath,
		WorkerCount:     raw.WorkerCount,
		RefreshInterval: raw.RefreshInterval,
		SidebarSize:     raw.SidebarSize,
		Locale:          raw.Locale,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.PublicationsURL == "" || cfg.AuthorsURL == "" {
		return fmt.Errorf("publications and authors URLs are required")
	}

	nonNegativeFields := map[string]int{
		"fetch timeout":    cfg.FetchTimeout,
		"refresh interval": cfg.RefreshInterval,
		"sidebar size":     cfg.SidebarSize,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if cfg.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}

	return nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
