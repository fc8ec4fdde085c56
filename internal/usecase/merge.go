package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"newsagent/internal/domain"
	"sort"
	"time"
)

// dateLayout задает формат даты выборки в записях хранилища.
const dateLayout = "2006-01-02"

// MergeUseCase реализует слияние дайджеста текущего запуска с хранилищем записей.
// Записи ключуются по ссылке: повторная выборка полностью перезаписывает
// запись и обновляет дату, остальные записи сохраняются без изменений.
type MergeUseCase struct {
	store     RecordStore
	annotator *DrawbackAnnotator
	log       *slog.Logger
	now       func() time.Time
}

// NewMergeUseCase создает новый UseCase слияния.
func NewMergeUseCase(store RecordStore, annotator *DrawbackAnnotator, log *slog.Logger) *MergeUseCase {
	return &MergeUseCase{
		store:     store,
		annotator: annotator,
		log:       log,
		now:       time.Now,
	}
}

// BuildRecords преобразует статьи дайджеста в записи текущего запуска,
// проставляя замечание о недостатке и сегодняшнюю дату выборки.
func (uc *MergeUseCase) BuildRecords(ctx context.Context, digest *domain.Digest) []domain.Record {
	today := uc.now().Format(dateLayout)
	records := make([]domain.Record, 0, digest.Len())
	for _, source := range digest.Sources() {
		for _, article := range digest.Articles(source) {
			records = append(records, domain.Record{
				Title:     article.Title,
				Link:      article.Link,
				Summary:   article.Summary,
				Published: article.Published,
				Source:    article.Source,
				Category:  article.Category,
				Drawback:  uc.annotator.Annotate(ctx, article.Title, article.Summary, article.Source),
				Fetched:   today,
			})
		}
	}
	return records
}

// Merge дополняет сохраненные записи статьями дайджеста и перезаписывает
// хранилище целиком. Результат отсортирован по дате выборки по убыванию;
// записи с одинаковой датой сохраняют порядок вставки.
func (uc *MergeUseCase) Merge(ctx context.Context, digest *domain.Digest) ([]domain.Record, error) {
	existing, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load record store: %w", err)
	}

	records := make([]domain.Record, 0, len(existing)+digest.Len())
	index := make(map[string]int)
	upsert := func(rec domain.Record) {
		if i, ok := index[rec.Link]; ok {
			records[i] = rec
			return
		}
		index[rec.Link] = len(records)
		records = append(records, rec)
	}
	for _, rec := range existing {
		if rec.Link == "" {
			continue
		}
		upsert(rec)
	}

	for _, rec := range uc.BuildRecords(ctx, digest) {
		upsert(rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Fetched > records[j].Fetched
	})

	if err := uc.store.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save record store: %w", err)
	}
	uc.log.Info("Record store merged",
		slog.String("component", "merger"),
		slog.Int("incoming", digest.Len()),
		slog.Int("total", len(records)),
	)
	return records, nil
}
