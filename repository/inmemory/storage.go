package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"planner/internal/domain/errors"
)

// Storage держит сериализованные коллекции в памяти. Используется в тестах
// и как запасной вариант, когда каталог данных недоступен.
type Storage struct {
	collections map[string][]byte
}

func NewStorage() *Storage {
	return &Storage{
		collections: make(map[string][]byte),
	}
}

func (s *Storage) Load(_ context.Context, collection string, out any) error {
	data, exists := s.collections[collection]
	if !exists {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func (s *Storage) Save(_ context.Context, collection string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	s.collections[collection] = payload
	return nil
}
