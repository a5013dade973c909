package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"planner/internal/domain/errors"

	"github.com/jackc/pgx/v5"
)

// Storage хранит каждую коллекцию одной jsonb-строкой таблицы collections.
// Контракт Load/Save совпадает с файловым хранилищем, бизнес-правила
// остаются в менеджерах сущностей.
type Storage struct {
	conn     *pgx.Conn
	prepLoad string
	prepSave string
}

func NewStorage(connStr string) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		log.Println("[ERROR] Не удалось подключиться к базе данных:", err)
		return nil, err
	}

	s := &Storage{
		conn:     conn,
		prepLoad: `SELECT data FROM collections WHERE name = $1`,
		prepSave: `INSERT INTO collections (name, data) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data`,
	}
	log.Println("[SUCCESS] Соединение с базой данных установлено успешно")
	return s, nil
}

func (s *Storage) Load(ctx context.Context, collection string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	stmt, err := s.conn.Prepare(ctx, "load_collection", s.prepLoad)
	if err != nil {
		log.Println("[ERROR] Не удалось подготовить запрос на чтение коллекции:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	row := s.conn.QueryRow(ctx, stmt.Name, collection)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		log.Println("[ERROR] Не удалось прочитать коллекцию:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Println("[ERROR] Повреждён документ коллекции:", collection, err)
		return fmt.Errorf("%w: повреждён документ коллекции %s: %v", errors.ErrStorage, collection, err)
	}
	return nil
}

func (s *Storage) Save(ctx context.Context, collection string, data any) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	payload, err := json.Marshal(data)
	if err != nil {
		log.Println("[ERROR] Не удалось сериализовать коллекцию:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	stmt, err := s.conn.Prepare(ctx, "save_collection", s.prepSave)
	if err != nil {
		log.Println("[ERROR] Не удалось подготовить запрос на запись коллекции:", err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if _, err := s.conn.Exec(ctx, stmt.Name, collection, payload); err != nil {
		log.Println("[ERROR] Не удалось сохранить коллекцию:", collection, err)
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}
