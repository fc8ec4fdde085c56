package storage

import (
	"context"
	"newsagent/internal/domain"
)

// Store определяет общий интерфейс хранилища записей о статьях.
// Load возвращает записи в порядке их следования в хранилище,
// Save полностью перезаписывает хранилище.
type Store interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
}

// Archiver определяет интерфейс необязательного архивного хранилища.
// Архив пополняется записями каждого запуска и не участвует в слиянии.
type Archiver interface {
	ArchiveRecords(ctx context.Context, records []domain.Record) (int, error)
	Close()
}
