package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"newsagent/internal/domain"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedParser реализует разбор RSS и Atom лент поверх gofeed.
// Преобразует записи ленты в доменные Entry с сырыми текстовыми полями.
type FeedParser struct {
	log *slog.Logger
}

// NewFeedParser создает новый парсер лент.
func NewFeedParser(log *slog.Logger) *FeedParser {
	return &FeedParser{
		log: log,
	}
}

// Parse реализует метод интерфейса FeedParser.
// Отсутствующие поля записи превращаются в пустые строки, дата публикации
// сохраняется в исходном строковом виде как отдает источник.
func (p *FeedParser) Parse(ctx context.Context, reader io.Reader) (*domain.ParsedFeed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	feed, err := gofeed.NewParser().Parse(reader)
	if err != nil {
		p.log.Error("Error parsing feed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	parsed := domain.ParsedFeed{
		Title:   strings.TrimSpace(feed.Title),
		Entries: make([]domain.Entry, 0, len(feed.Items)),
	}
	for _, item := range feed.Items {
		parsed.Entries = append(parsed.Entries, domain.Entry{
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Published:   item.Published,
			Description: item.Description,
			Content:     item.Content,
		})
	}
	return &parsed, nil
}
