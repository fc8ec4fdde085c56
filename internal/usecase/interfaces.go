package usecase

import (
	"context"
	"io"
	"newsagent/internal/domain"
)

// FeedFetcher определяет интерфейс для загрузки документов лент из внешних источников.
// Возвращает io.ReadCloser который должен быть закрыт после использования.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FeedParser определяет интерфейс для разбора документа ленты в доменную модель.
type FeedParser interface {
	Parse(ctx context.Context, reader io.Reader) (*domain.ParsedFeed, error)
}

// TextEnhancer определяет необязательную внешнюю генерацию текста.
// Ошибки любого метода означают откат на эвристические правила
// и никогда не прерывают обработку.
type TextEnhancer interface {
	Summarize(ctx context.Context, text string) (string, error)
	Drawback(ctx context.Context, title, summary, source string) (string, error)
}

// RecordStore определяет интерфейс хранилища записей о статьях.
// Load возвращает записи в порядке их следования в хранилище,
// Save полностью перезаписывает хранилище.
type RecordStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
}
