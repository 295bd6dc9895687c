package main

import (
	"log"
	"os"

	"gym-planner/internal/config"
	"gym-planner/internal/database"
)

// fileExists проверяет существование файла
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

func main() {
	log.Println("Проверка подключения к базе данных...")

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Если скрипт запущен на хосте (не в Docker), заменяем "postgres" на "localhost"
	isInDocker := os.Getenv("container") != "" || fileExists("/.dockerenv")
	if cfg.Database.Host == "postgres" && !isInDocker {
		log.Println("Обнаружен хост 'postgres' вне Docker, переключаюсь на 'localhost'")
		cfg.Database.Host = "localhost"
	}

	log.Printf("Параметры подключения: host=%s port=%s user=%s db=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.DBName, cfg.Database.SSLMode)

	// Пытаемся подключиться к базе данных
	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия подключения: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatalf("Ошибка проверки подключения (Ping): %v", err)
	}
	log.Println("Подключение установлено, Ping прошёл успешно")

	// Простой запрос как дополнительная проверка работоспособности.
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatalf("Ошибка выполнения тестового запроса: %v", err)
	}
	if result != 1 {
		log.Fatalf("Неожиданный результат тестового запроса: %d", result)
	}

	// Состояние миграций: версия и отсутствие "грязного" состояния.
	migrator, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Ошибка создания мигратора: %v", err)
	}
	version, dirty, err := migrator.Version()
	if err != nil {
		log.Fatalf("Ошибка получения версии миграций: %v", err)
	}
	switch {
	case dirty:
		log.Fatalf("Миграции в грязном состоянии на версии %d, требуется ручное вмешательство", version)
	case version == 0:
		log.Println("Миграции ещё не применялись: выполните cmd/migrate или запустите сервер")
	default:
		log.Printf("Текущая версия миграций: %d", version)
	}

	log.Println("Все проверки пройдены, база данных готова к работе")
}
