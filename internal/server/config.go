package server

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"planner/internal/domain/errors"
)

type Config struct {
	Addr        string
	Port        int
	DataDir     string
	ExportDir   string
	DBStr       string
	MigratePath string
}

const (
	defaultAddr        = "0.0.0.0"
	defaultPort        = 8080
	defaultDataDir     = "db"
	defaultExportDir   = "out"
	defaultMigratePath = "migrations"
)

var (
	addr        = flag.String("addr", defaultAddr, "адрес сервера (по умолчанию 0.0.0.0)")
	port        = flag.Int("port", defaultPort, "порт сервера (по умолчанию 8080)")
	dataDir     = flag.String("datadir", defaultDataDir, "каталог JSON-коллекций")
	exportDir   = flag.String("exportdir", defaultExportDir, "каталог экспорта досок")
	dbstr       = flag.String("dbstr", "", "строка подключения к БД (пусто — файловое хранилище)")
	migratePath = flag.String("migratepath", defaultMigratePath, "путь к папке с миграциями")
	configFile  = flag.String("c", "", "путь к файлу конфигурации JSON")
	parsed      = false
)

func ReadConfig() *Config {
	if !parsed {
		flag.Parse()
		parsed = true
	}

	cfg := &Config{
		Addr:        defaultAddr,
		Port:        defaultPort,
		DataDir:     defaultDataDir,
		ExportDir:   defaultExportDir,
		MigratePath: defaultMigratePath,
	}

	jsonConfig := loadJSONConfig()
	if jsonConfig != nil {
		cfg = jsonConfig
	}

	cfg = applyEnvOverrides(cfg)
	cfg = applyFlagOverrides(cfg)

	return cfg
}

func loadJSONConfig() *Config {
	configPath := *configFile
	if configPath == "" {
		configPath = os.Getenv("CONFIG")
	}

	if configPath == "" {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Printf("Warning: %s %s: %v\n", errors.ErrConfigFileReadFailed.Error(), configPath, err)
		return nil
	}

	var jsonConfig Config
	if err := json.Unmarshal(data, &jsonConfig); err != nil {
		fmt.Printf("Warning: %s: %v\n", errors.ErrConfigParseFailed.Error(), err)
		return nil
	}

	fmt.Printf("JSON конфигурация успешно загружена из: %s\n", configPath)
	return &jsonConfig
}

func applyEnvOverrides(cfg *Config) *Config {
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err != nil {
			fmt.Printf("Warning: %s в переменной окружения PORT: %s\n", errors.ErrConfigInvalidFormat.Error(), port)
		} else if p < 1 || p > 65535 {
			fmt.Printf("Warning: %s - порт должен быть от 1 до 65535: %d\n", errors.ErrConfigInvalidFormat.Error(), p)
		} else {
			cfg.Port = p
		}
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if dir := os.Getenv("EXPORT_DIR"); dir != "" {
		cfg.ExportDir = dir
	}
	if dbStr := os.Getenv("DB_STR"); dbStr != "" {
		cfg.DBStr = dbStr
	}
	if path := os.Getenv("MIGRATE_PATH"); path != "" {
		cfg.MigratePath = path
	}

	return cfg
}

// applyFlagOverrides применяет только флаги, заданные явно,
// чтобы не затирать значения из JSON и окружения значениями по умолчанию.
func applyFlagOverrides(cfg *Config) *Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "port":
			cfg.Port = *port
		case "datadir":
			cfg.DataDir = *dataDir
		case "exportdir":
			cfg.ExportDir = *exportDir
		case "dbstr":
			cfg.DBStr = *dbstr
		case "migratepath":
			cfg.MigratePath = *migratePath
		}
	})

	return cfg
}
