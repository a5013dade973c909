package db

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func Migration(dbStr, migratePath string) error {
	if dbStr == "" {
		return fmt.Errorf("не указана строка подключения к БД")
	}
	if migratePath == "" {
		return fmt.Errorf("не указан путь к миграциям")
	}

	m, err := migrate.New("file://"+migratePath, dbStr)
	if err != nil {
		log.Println("[ERROR] Не удалось инициализировать миграции:", err)
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Println("[ERROR] Не удалось применить миграции:", err)
		return err
	}
	return nil
}
