package main

import (
	"log"

	"gym-planner/internal/config"
	"gym-planner/internal/database"
	"gym-planner/internal/server"
)

//	@title			Gym Planner API
//	@version		1.0
//	@description	REST API для планирования тренировок: каталог упражнений, привязки пользователя, воркауты, тренировки и планы.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	log.Printf("Конфигурация загружена: env=%s addr=%s db=%s@%s:%s/%s",
		cfg.AppEnv, cfg.Server.Address(),
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к базе данных
	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия подключения к базе данных: %v", err)
		}
	}()

	// Применяем миграции при старте, чтобы схема всегда соответствовала коду
	migrator, err := database.NewMigrator(db)
	if err != nil {
		log.Fatalf("Ошибка создания мигратора: %v", err)
	}
	if err := migrator.Up(); err != nil && err != database.ErrNoChange {
		log.Fatalf("Ошибка применения миграций: %v", err)
	}
	if err := migrator.Close(); err != nil {
		log.Printf("Ошибка закрытия мигратора: %v", err)
	}

	// Запускаем HTTP сервер (блокируется до сигнала остановки)
	srv := server.NewServer(cfg, db)
	if err := srv.Start(); err != nil {
		log.Fatalf("Ошибка работы сервера: %v", err)
	}
}
