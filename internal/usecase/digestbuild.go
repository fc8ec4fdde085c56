package usecase

import (
	"context"
	"log/slog"
	"newsagent/internal/config"
	"newsagent/internal/domain"
	"time"
)

// DigestBuildUseCase реализует бизнес-логику сборки дайджеста текущего запуска.
// Последовательно обходит ленты в порядке конфигурации, ограничивает
// количество записей и группирует статьи по источникам.
type DigestBuildUseCase struct {
	fetcher    FeedFetcher
	parser     FeedParser
	summarizer *Summarizer
	log        *slog.Logger
}

// NewDigestBuildUseCase создает новый UseCase сборки дайджеста.
func NewDigestBuildUseCase(
	fetcher FeedFetcher,
	parser FeedParser,
	summarizer *Summarizer,
	log *slog.Logger,
) *DigestBuildUseCase {
	return &DigestBuildUseCase{
		fetcher:    fetcher,
		parser:     parser,
		summarizer: summarizer,
		log:        log,
	}
}

// BuildDigest собирает дайджест по всем сконфигурированным лентам.
// Недоступная или нечитаемая лента пропускается с записью в лог,
// остальные ленты обрабатываются дальше.
func (uc *DigestBuildUseCase) BuildDigest(ctx context.Context, feeds []config.Feed) *domain.Digest {
	start := time.Now()
	uc.log.Info("Digest build started",
		slog.String("component", "digest-builder"),
		slog.Int("feed_count", len(feeds)),
	)
	digest := domain.NewDigest()
	for _, feed := range feeds {
		articles, err := uc.processFeed(ctx, feed)
		if err != nil {
			uc.log.Error("Feed processing failed, skipping feed",
				slog.String("component", "digest-builder"),
				slog.String("feed", feed.Name),
				slog.String("url", feed.URL),
				slog.Any("error", err),
			)
			continue
		}
		for _, article := range articles {
			digest.Add(article)
		}
	}
	uc.log.Info("Digest build completed",
		slog.String("component", "digest-builder"),
		slog.Int("articles", digest.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return digest
}

// processFeed выполняет полный цикл обработки одной ленты: загрузку,
// разбор и преобразование записей в статьи с кратким изложением.
func (uc *DigestBuildUseCase) processFeed(ctx context.Context, feed config.Feed) ([]domain.Article, error) {
	log := uc.log.With(
		slog.String("component", "digest-builder"),
		slog.String("feed", feed.Name),
		slog.String("url", feed.URL),
	)
	reader, err := uc.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	log.Debug("Feed fetched successfully", slog.String("stage", "fetch"))

	parsed, err := uc.parser.Parse(ctx, reader)
	if err != nil {
		return nil, err
	}

	entries := parsed.Entries
	if len(entries) > feed.MaxItems {
		entries = entries[:feed.MaxItems]
	}

	log.Debug("Feed parsed successfully",
		slog.String("stage", "parse"),
		slog.Int("items_parsed", len(parsed.Entries)),
		slog.Int("items_kept", len(entries)),
	)

	articles := make([]domain.Article, 0, len(entries))
	for _, entry := range entries {
		articles = append(articles, domain.Article{
			Title:     entry.Title,
			Link:      entry.Link,
			Summary:   uc.summarizer.Summarize(ctx, entry),
			Published: entry.Published,
			Source:    feed.Name,
			Category:  feed.Category,
		})
	}
	log.Info("Feed processed", slog.Int("articles", len(articles)))
	return articles, nil
}
