package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"planner/internal/domain/errors"
)

// Storage хранит каждую коллекцию в отдельном JSON-файле каталога данных.
// Запись выполняется через временный файл и атомарную замену, предыдущая
// версия файла сохраняется в <имя>.json.backup перед заменой.
type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: не указан каталог данных", errors.ErrStorage)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Println("[ERROR] Не удалось создать каталог данных:", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	log.Println("[SUCCESS] Файловое хранилище инициализировано:", dir)
	return &Storage{dir: dir}, nil
}

func (s *Storage) filePath(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *Storage) Load(_ context.Context, collection string, out any) error {
	data, err := os.ReadFile(s.filePath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Println("[ERROR] Не удалось прочитать коллекцию:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Println("[ERROR] Повреждён файл коллекции:", collection, err)
		return fmt.Errorf("%w: повреждён файл коллекции %s: %v", errors.ErrStorage, collection, err)
	}
	return nil
}

func (s *Storage) Save(_ context.Context, collection string, data any) error {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Println("[ERROR] Не удалось сериализовать коллекцию:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	target := s.filePath(collection)

	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		log.Println("[ERROR] Не удалось создать временный файл:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		log.Println("[ERROR] Не удалось записать временный файл:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	// CreateTemp создаёт файл с правами 0600, файлу коллекции нужны 0644.
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	// Резервная копия предыдущей версии до замены: при сбое между
	// этими шагами исходный файл остаётся на месте.
	if _, err := os.Stat(target); err == nil {
		if err := s.backup(target); err != nil {
			os.Remove(tmpName)
			return err
		}
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		log.Println("[ERROR] Не удалось заменить файл коллекции:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func (s *Storage) backup(target string) error {
	data, err := os.ReadFile(target)
	if err != nil {
		log.Println("[ERROR] Не удалось прочитать файл для резервной копии:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if err := os.WriteFile(target+".backup", data, 0o644); err != nil {
		log.Println("[ERROR] Не удалось записать резервную копию:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}
