package storage

import (
	"context"
	"fmt"
	"log/slog"
	"newsagent/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresArchive пишет записи каждого запуска в архивную таблицу Postgres.
type PostgresArchive struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPostgresArchive(pool *pgxpool.Pool, log *slog.Logger) *PostgresArchive {
	log.Info("Initializing Postgres archive")
	return &PostgresArchive{
		pool: pool,
		log:  log,
	}
}

func (db *PostgresArchive) Close() {
	db.log.Info("Closing database connection pool")
	db.pool.Close()
}

// ArchiveRecords вставляет записи пакетом с перезаписью по ссылке.
func (db *PostgresArchive) ArchiveRecords(ctx context.Context, records []domain.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		db.log.Error(
			"Failed to begin transaction",
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(context.Background()); rollbackErr != nil {
				db.log.Error("Failed to rollback transaction", slog.Any("error", rollbackErr))
			}
		}
	}()
	batch := &pgx.Batch{}
	query := `
	INSERT INTO articles (link, title, summary, published, source, category, drawbacks, fetched)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (link) DO UPDATE SET
		title = EXCLUDED.title,
		summary = EXCLUDED.summary,
		published = EXCLUDED.published,
		source = EXCLUDED.source,
		category = EXCLUDED.category,
		drawbacks = EXCLUDED.drawbacks,
		fetched = EXCLUDED.fetched;
	`
	for _, rec := range records {
		if rec.Link == "" {
			continue
		}
		batch.Queue(
			query,
			rec.Link,
			rec.Title,
			rec.Summary,
			rec.Published,
			rec.Source,
			rec.Category,
			rec.Drawback,
			rec.Fetched,
		)
	}
	batchResult := tx.SendBatch(ctx, batch)
	if err = batchResult.Close(); err != nil {
		db.log.Error(
			"Failed to execute batch",
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("failed to execute batch: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		db.log.Error("Failed to commit transaction", slog.Any("error", err))
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return batch.Len(), nil
}
