// Package rss collects raw headlines from the configured syndication feeds.
// The pipeline itself never fetches anything; it consumes the merged list
// this package produces.
package rss

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/prismanews/prisma/internal/logger"
	"github.com/prismanews/prisma/internal/metrics"
	"github.com/prismanews/prisma/internal/news"
)

// Source scopes. National sources feed the main stream directly;
// international ones pass through the country-relevance filter first.
const (
	ScopeNational      = "national"
	ScopeInternational = "international"
)

// Source is one configured feed.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Scope    string `yaml:"scope"`
	MaxItems int    `yaml:"max_items,omitempty"`
}

type sourcesConfig struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the feeds list from the YAML config.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources config: %w", err)
	}

	var cfg sourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse sources config: %w", err)
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("sources config %s: no sources defined", path)
	}

	for i, s := range cfg.Sources {
		if s.Name == "" || s.URL == "" {
			return nil, fmt.Errorf("sources config %s: source %d is missing name or url", path, i)
		}
		switch s.Scope {
		case ScopeNational, ScopeInternational:
		case "":
			cfg.Sources[i].Scope = ScopeNational
		default:
			return nil, fmt.Errorf("sources config %s: source %q has unknown scope %q", path, s.Name, s.Scope)
		}
	}
	return cfg.Sources, nil
}

// FetchAll downloads and parses every source with at most concurrency
// fetches in flight. A failing source is logged and contributes zero items;
// the batch never aborts. Results are merged in source declaration order, so
// the pipeline input order is stable regardless of fetch timing. capNational
// and capInternational are the default per-source item limits, overridable
// per source via max_items.
func FetchAll(ctx context.Context, sources []Source, concurrency, capNational, capInternational int) (national, international []news.Item) {
	if concurrency <= 0 {
		concurrency = 4
	}

	perSource := make([][]news.Item, len(sources))
	var mu sync.Mutex
	failed := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			limit := src.MaxItems
			if limit <= 0 {
				if src.Scope == ScopeInternational {
					limit = capInternational
				} else {
					limit = capNational
				}
			}

			items, err := fetchSource(ctx, src, limit)
			if err != nil {
				logger.Warn("feed fetch failed", "source", src.Name, "error", err)
				metrics.Global.IncrementSourcesFailed()
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			perSource[i] = items
			return nil
		})
	}
	_ = g.Wait()

	for i, src := range sources {
		if src.Scope == ScopeInternational {
			international = append(international, perSource[i]...)
		} else {
			national = append(national, perSource[i]...)
		}
	}

	metrics.Global.AddSourcesFetched(len(sources) - failed)
	metrics.Global.AddItemsCollected(len(national) + len(international))
	logger.Info("feeds fetched",
		"sources_ok", len(sources)-failed,
		"sources_failed", failed,
		"national_items", len(national),
		"international_items", len(international))
	return national, international
}

func fetchSource(ctx context.Context, src Source, limit int) ([]news.Item, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	raw := make([]news.Item, 0, limit)
	for _, entry := range feed.Items {
		if len(raw) >= limit {
			break
		}
		it := news.Item{
			Source: src.Name,
			Title:  entry.Title,
			Link:   entry.Link,
		}
		if entry.PublishedParsed != nil {
			it.Published = *entry.PublishedParsed
		}
		raw = append(raw, it)
	}

	items := news.Sanitize(raw)
	if dropped := len(raw) - len(items); dropped > 0 {
		metrics.Global.AddItemsDropped(dropped)
	}
	logger.Debug("feed fetched", "source", src.Name, "items", len(items))
	return items, nil
}
