package usecase

import (
	"context"
	"newsagent/internal/domain"
)

// RecordReader определяет интерфейс для чтения записей из хранилища.
// Используется для предоставления данных через API.
type RecordReader interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// RecordsGetterUseCase реализует бизнес-логику получения записей для API.
type RecordsGetterUseCase struct {
	store RecordReader
}

// NewRecordsGetterUseCase создает новый UseCase для получения записей.
func NewRecordsGetterUseCase(s RecordReader) *RecordsGetterUseCase {
	return &RecordsGetterUseCase{store: s}
}

// GetRecords возвращает все сохраненные записи в порядке хранилища.
// Делегирует вызов хранилищу без дополнительной обработки.
func (us *RecordsGetterUseCase) GetRecords(ctx context.Context) ([]domain.Record, error) {
	return us.store.Load(ctx)
}
