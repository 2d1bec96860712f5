// Package app wires the whole batch run together: fetch, filter, embed,
// dedupe, cluster, annotate, render.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prismanews/prisma/internal/bias"
	"github.com/prismanews/prisma/internal/cluster"
	"github.com/prismanews/prisma/internal/config"
	"github.com/prismanews/prisma/internal/dedupe"
	"github.com/prismanews/prisma/internal/embed"
	"github.com/prismanews/prisma/internal/logger"
	"github.com/prismanews/prisma/internal/metrics"
	"github.com/prismanews/prisma/internal/news"
	"github.com/prismanews/prisma/internal/relevance"
	"github.com/prismanews/prisma/internal/render"
	"github.com/prismanews/prisma/internal/rss"
	"github.com/prismanews/prisma/internal/storage"
	"github.com/prismanews/prisma/internal/telegram"
	"github.com/prismanews/prisma/internal/topic"
)

// Run executes one full batch: one fetch pass, one sequential pipeline pass,
// one set of rendered artifacts. The pipeline stages after fetching are
// intentionally single-threaded; deduplication and clustering are
// order-dependent.
func Run(cfg *config.Config) error {
	start := time.Now()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(start))
	}()

	ctx := context.Background()

	sources, err := rss.LoadSources(cfg.SourcesConfigPath)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	phrases, err := bias.LoadPhrases(cfg.ReferencesConfigPath)
	if err != nil {
		return fmt.Errorf("load bias references: %w", err)
	}

	cache := storage.NewVectorCache(cfg.CacheFilePath, cfg.CacheTTLHours)
	if err := cache.Load(); err != nil {
		logger.Warn("vector cache load failed, starting empty", "error", err)
	}

	provider, cleanup, err := newProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create embed provider: %w", err)
	}
	defer cleanup()

	svc := embed.NewService(provider, cache, cfg.EmbedBatchSize)

	// Collect. National feeds go straight in; international feeds only keep
	// what mentions the target country, deduplicated by link and capped.
	national, international := rss.FetchAll(ctx, sources, cfg.FetchConcurrency,
		cfg.MaxItemsNational, cfg.MaxItemsInternational)
	items := append(national, filterInternational(international, cfg.MaxInternationalTotal)...)
	if len(items) > cfg.MaxItemsTotal {
		items = items[:cfg.MaxItemsTotal]
	}
	logger.Info("batch collected", "items", len(items))

	// Reference centroids are embedded once per run and reused for every
	// cluster's bias computation.
	refA := svc.EmbedTitles(ctx, phrases.Progressive)
	refB := svc.EmbedTitles(ctx, phrases.Conservative)

	cards, sourceCount := buildCards(ctx, items, svc, cfg, refA, refB)

	page := render.Page{
		GeneratedAt: time.Now(),
		SourceCount: sourceCount,
		BaseURL:     cfg.BaseURL,
		Cards:       cards,
	}
	if err := render.WriteSite(cfg.OutputDir, page); err != nil {
		return fmt.Errorf("write site: %w", err)
	}

	if err := cache.Save(); err != nil {
		logger.Warn("vector cache save failed", "error", err)
	}

	if cfg.TelegramToken != "" && len(cards) > 0 {
		msg := formatDigestMessage(cards, 3)
		if err := telegram.SendDigest(ctx, cfg.TelegramToken, cfg.TelegramChatID, msg); err != nil {
			logger.Warn("telegram digest failed", "error", err)
		}
	}

	metrics.Global.SetLastRun()
	logger.Info("run finished", "cards", len(cards), "duration", time.Since(start).String())
	return nil
}

// buildCards runs the sequential core pipeline and assembles the rendered
// clusters. An empty item list yields an empty card list, not an error.
func buildCards(ctx context.Context, items []news.Item, svc *embed.Service, cfg *config.Config, refA, refB [][]float32) ([]render.Card, int) {
	if len(items) == 0 {
		return nil, 0
	}

	vectors := svc.EmbedTitles(ctx, news.Titles(items))

	before := len(items)
	items, vectors = dedupe.Dedupe(items, vectors, dedupe.Options{
		SimilarityThreshold: float32(cfg.DuplicateThreshold),
		TitleRatio:          cfg.TitleRatio,
	})
	metrics.Global.AddDuplicatesRemoved(before - len(items))
	logger.Info("deduplicated", "kept", len(items), "removed", before-len(items))

	engine := cluster.New(cluster.Options{
		Threshold:   float32(cfg.ClusterThreshold),
		MinGrouping: float32(cfg.MinGroupThreshold),
	})
	groups := engine.Cluster(vectors)
	metrics.Global.SetClustersBuilt(len(groups))
	logger.Info("clustered", "clusters", len(groups))

	extractor := topic.New(nil)

	cards := make([]render.Card, 0, len(groups))
	for _, g := range groups {
		memberVecs := make([][]float32, len(g))
		entries := make([]render.Entry, len(g))
		for i, idx := range g {
			memberVecs[i] = vectors[idx]
			entries[i] = render.Entry{
				Source: items[idx].Source,
				Title:  items[idx].Title,
				Link:   items[idx].Link,
			}
		}

		cards = append(cards, render.Card{
			Headline: extractor.Headline(g, items),
			Bias:     bias.Score(memberVecs, refA, refB),
			Entries:  entries,
		})
	}

	seen := make(map[string]struct{})
	for _, it := range items {
		seen[it.Source] = struct{}{}
	}
	return cards, len(seen)
}

// filterInternational keeps only items that mention the target country,
// drops repeated links among them and applies the international cap.
func filterInternational(items []news.Item, maxTotal int) []news.Item {
	matcher := relevance.Spain()
	seen := make(map[string]struct{}, len(items))
	kept := make([]news.Item, 0, len(items))

	for _, it := range items {
		if !matcher.Matches(it.Title) {
			continue
		}
		if _, dup := seen[it.Link]; dup {
			continue
		}
		seen[it.Link] = struct{}{}
		kept = append(kept, it)
		if maxTotal > 0 && len(kept) >= maxTotal {
			break
		}
	}

	metrics.Global.AddItemsFiltered(len(items) - len(kept))
	logger.Info("international stream filtered", "in", len(items), "relevant", len(kept))
	return kept
}

func newProvider(ctx context.Context, cfg *config.Config) (embed.Provider, func(), error) {
	switch cfg.EmbedProvider {
	case config.ProviderOpenAI:
		p, err := embed.NewOpenAIProvider(embed.OpenAIConfig{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.RequestTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	default:
		p, err := embed.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
}

// formatDigestMessage renders the top clusters as one Telegram HTML message.
func formatDigestMessage(cards []render.Card, max int) string {
	var b strings.Builder

	b.WriteString("<b>PRISMA</b> — mas contexto, menos ruido\n")
	b.WriteString("━━━━━━━━━━━━━━━━━━━━\n\n")

	for i, card := range cards {
		if i >= max {
			break
		}
		b.WriteString(fmt.Sprintf("<b>%d. %s</b>\n", i+1, card.Headline))
		b.WriteString(fmt.Sprintf("<i>%s (%.0f%% / %.0f%%)</i>\n", card.Bias.Label, card.Bias.PctA, card.Bias.PctB))
		for j, e := range card.Entries {
			if j >= 3 {
				break
			}
			b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a> — %s\n", e.Link, e.Title, e.Source))
		}
		b.WriteString("\n")
	}

	b.WriteString("━━━━━━━━━━━━━━━━━━━━")
	return b.String()
}
