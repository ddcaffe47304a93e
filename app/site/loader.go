package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/pubfront/app/blog"
)

func Default() *Config {
	return &Config{
		Title:       "Blog",
		Tagline:     "Publications from our authors",
		Description: "Latest publications",
		Footer: Footer{
			Text: "All rights reserved.",
		},
		OrderOptions: []OrderOption{
			{Value: blog.OrderByDate, Label: "Date"},
			{Value: blog.OrderByCategory, Label: "Category"},
		},
		Sidebar: Sidebar{
			Title: "Latest news",
		},
	}
}

// Load reads the site file. A missing file yields the defaults; fields
// left out of the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Site configuration not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", path, err)
	}

	slog.Debug("Site configuration loaded", "path", path, "title", config.Title, "order_options", len(config.OrderOptions))

	return config, nil
}

func validate(config *Config) error {
	if config.Title == "" {
		return fmt.Errorf("title is required")
	}

	if config.Sidebar.Size < 0 {
		return fmt.Errorf("sidebar size must be non-negative")
	}

	seen := make(map[string]bool, len(config.OrderOptions))
	for i, option := range config.OrderOptions {
		if option.Value == "" {
			return fmt.Errorf("order option at index %d has no value", i)
		}
		if seen[option.Value] {
			return fmt.Errorf("duplicate order option '%s'", option.Value)
		}
		seen[option.Value] = true
	}

	for i, link := range config.Footer.Links {
		if link.URL == "" {
			return fmt.Errorf("footer link at index %d has no URL", i)
		}
	}

	return nil
}
