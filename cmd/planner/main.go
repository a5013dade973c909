package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner/internal/planner"
	"planner/internal/server"
	db "planner/repository/db"
	inmemory "planner/repository/inmemory"
	jsonfile "planner/repository/jsonfile"
)

func main() {
	log.Println("Запуск сервиса планировщика...")

	cfg := server.ReadConfig()

	var store planner.Store

	if cfg.DBStr != "" {
		if err := db.Migration(cfg.DBStr, cfg.MigratePath); err != nil {
			log.Fatalf("[ERROR] Ошибка применения миграций: %v", err)
		}
		log.Println("[SUCCESS] Миграции применены успешно")

		dbStorage, err := db.NewStorage(cfg.DBStr)
		if err != nil {
			log.Println("[WARN] Не удалось подключиться к БД, используем файловое хранилище:", err)
		} else {
			store = dbStorage
		}
	}

	if store == nil {
		fileStorage, err := jsonfile.NewStorage(cfg.DataDir)
		if err != nil {
			log.Println("[WARN] Каталог данных недоступен, используем память:", err)
			store = inmemory.NewStorage()
		} else {
			store = fileStorage
		}
	}

	managers := planner.New(store, cfg.ExportDir)
	if managers == nil {
		log.Fatal("[ERROR] Не удалось инициализировать менеджеры сущностей")
	}

	api := server.NewPlannerAPI(managers, managers, managers, managers, cfg)
	if api == nil {
		log.Fatal("[ERROR] Не удалось инициализировать API")
	}

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Сервис запущен на %s:%d", cfg.Addr, cfg.Port)
		if err := api.Start(); err != nil {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		log.Printf("[INFO] Получен сигнал %v, начинаем graceful shutdown...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := api.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] Ошибка при graceful shutdown: %v", err)
		} else {
			log.Println("[SUCCESS] Graceful shutdown выполнен успешно")
		}

	case err := <-serverErr:
		log.Printf("[ERROR] Ошибка сервера: %v", err)
		cancel()
	}

	log.Println("Сервис завершен")
}
