//go:build integration
// +build integration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	appcfg "gym-planner/internal/config"
	"gym-planner/internal/database"
	"gym-planner/internal/server"
)

// NewTestRouter создает новый экземпляр gin.Engine для интеграционных тестов.
// Использует отдельную тестовую БД, если задана переменная окружения TEST_DB_NAME.
func NewTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	router, _ := NewTestRouterWithDB(t)
	return router
}

// NewTestRouterWithDB — как NewTestRouter, но дополнительно возвращает
// подключение к БД. Нужно тестам, которые наполняют таблицы без API-роутов
// (workout_exercises, sets) напрямую через SQL.
func NewTestRouterWithDB(t *testing.T) (*gin.Engine, *database.DB) {
	t.Helper()

	rootDir, err := findProjectRoot()
	if err != nil {
		t.Fatalf("find project root: %v", err)
	}
	if err := os.Chdir(rootDir); err != nil {
		t.Fatalf("chdir to project root: %v", err)
	}

	cfg, err := appcfg.Load()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}

	// Если указано имя тестовой БД — переопределяем его в конфиге.
	if testDB := os.Getenv("TEST_DB_NAME"); testDB != "" {
		cfg.Database.DBName = testDB
	}

	// Лимит запросов мешал бы быстрым последовательным вызовам в тестах.
	cfg.RateLimit.Enabled = false

	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		t.Fatalf("db connection: %v", err)
	}

	// Применяем все миграции и очищаем пользовательские данные перед тестом.
	// Каталог exercises не трогаем: его наполняет сидинг миграций.
	if err := MigrateDatabase(db); err != nil {
		t.Fatalf("migrate database: %v", err)
	}
	if err := clearUserData(db); err != nil {
		t.Fatalf("clear user data: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	srv := server.NewServer(cfg, db)
	return srv.GetRouter(), db
}

// findProjectRoot находит корень проекта по файлу go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// clearUserData очищает пользовательские таблицы перед тестом.
// TRUNCATE users каскадно чистит trainings/plans/user_exercises/workouts,
// подходы уходят каскадом вместе с воркаутами.
func clearUserData(db *database.DB) error {
	return db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE").Error
}
