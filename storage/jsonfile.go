package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"newsagent/internal/domain"
	"os"
	"path/filepath"
)

// JSONFileStore хранит записи как JSON-массив в одном файле.
// Отсутствующий или поврежденный файл считается пустым хранилищем,
// чтобы слияние переживало ручные правки файла.
type JSONFileStore struct {
	path string
	log  *slog.Logger
}

// NewJSONFileStore создает хранилище записей по указанному пути.
func NewJSONFileStore(path string, log *slog.Logger) *JSONFileStore {
	return &JSONFileStore{
		path: path,
		log:  log,
	}
}

// Load читает записи из файла в порядке их следования.
func (s *JSONFileStore) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("Store file is corrupt, treating as empty",
			slog.String("component", "json-store"),
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return nil, nil
	}
	return records, nil
}

// Save перезаписывает файл хранилища целиком.
// Родительские каталоги создаются при необходимости.
func (s *JSONFileStore) Save(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	s.log.Debug("Store file written",
		slog.String("component", "json-store"),
		slog.String("path", s.path),
		slog.Int("count", len(records)),
	)
	return nil
}
