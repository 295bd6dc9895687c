package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gym-planner/docs"
	"gym-planner/internal/config"
	"gym-planner/internal/database"
	authhandler "gym-planner/internal/handler/auth"
	exercisehandler "gym-planner/internal/handler/exercise"
	"gym-planner/internal/handler/health"
	"gym-planner/internal/handler/middleware"
	planhandler "gym-planner/internal/handler/plan"
	traininghandler "gym-planner/internal/handler/training"
	userhandler "gym-planner/internal/handler/user"
	uehandler "gym-planner/internal/handler/userexercise"
	workouthandler "gym-planner/internal/handler/workout"
	pgrepo "gym-planner/internal/repository/postgres"
	authuc "gym-planner/internal/usecase/auth"
	exerciseuc "gym-planner/internal/usecase/exercise"
	planuc "gym-planner/internal/usecase/plan"
	traininguc "gym-planner/internal/usecase/training"
	useruc "gym-planner/internal/usecase/user"
	ueuc "gym-planner/internal/usecase/userexercise"
	workoutuc "gym-planner/internal/usecase/workout"
	jwtsvc "gym-planner/pkg/jwt"
	"gym-planner/pkg/logger"
)

// Server представляет HTTP сервер приложения
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *database.DB
	cfg        *config.Config
	log        logger.Logger

	jwtService jwtsvc.Service

	authHandler     *authhandler.Handler
	userHandler     *userhandler.Handler
	exerciseHandler *exercisehandler.Handler
	ueHandler       *uehandler.Handler
	workoutHandler  *workouthandler.Handler
	trainingHandler *traininghandler.Handler
	planHandler     *planhandler.Handler
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config, db *database.DB) *Server {
	// Устанавливаем режим Gin в зависимости от окружения
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		log:    logger.Default(),
	}

	// Собираем граф зависимостей: репозитории -> usecase'ы -> handler'ы.
	gormDB := db.DB
	userRepo := pgrepo.NewUserRepository(gormDB)
	exerciseRepo := pgrepo.NewExerciseRepository(gormDB)
	trainingRepo := pgrepo.NewTrainingRepository(gormDB)
	planRepo := pgrepo.NewPlanRepository(gormDB)
	ueRepo := pgrepo.NewUserExerciseRepository(gormDB)
	workoutRepo := pgrepo.NewWorkoutRepository(gormDB)

	s.jwtService = jwtsvc.NewService(&cfg.JWT)

	authService := authuc.NewService(userRepo, s.jwtService)
	userService := useruc.NewService(userRepo)
	exerciseService := exerciseuc.NewService(exerciseRepo)
	trainingService := traininguc.NewService(trainingRepo)
	planService := planuc.NewService(planRepo)
	ueService := ueuc.NewService(ueRepo, exerciseRepo, trainingRepo)
	workoutService := workoutuc.NewService(workoutRepo, planRepo)

	s.authHandler = authhandler.NewHandler(authService)
	s.userHandler = userhandler.NewHandler(userService)
	s.exerciseHandler = exercisehandler.NewHandler(exerciseService)
	s.ueHandler = uehandler.NewHandler(ueService)
	s.workoutHandler = workouthandler.NewHandler(workoutService)
	s.trainingHandler = traininghandler.NewHandler(trainingService)
	s.planHandler = planhandler.NewHandler(planService)

	// Настраиваем middleware и роуты
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware настраивает middleware для роутера
func (s *Server) setupMiddleware() {
	// Recovery должен быть первым, чтобы перехватывать паники остальных
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestLogger(s.log))
	s.router.Use(middleware.CORS(&s.cfg.CORS))
	s.router.Use(middleware.RateLimit(s.cfg.RateLimit))
}

// setupRoutes настраивает маршруты приложения
func (s *Server) setupRoutes() {
	s.setupHealthRoutes()
	s.setupAuthRoutes()
	s.setupAPIRoutes()
}

// setupHealthRoutes настраивает health-check эндпоинты.
func (s *Server) setupHealthRoutes() {
	healthHandler := health.NewHandler(s.db, s.cfg.AppEnv)
	// GET /health — базовый health-check сервера (жив ли процесс).
	s.router.GET("/health", healthHandler.Health)
	// GET /health/db — проверка доступности базы данных.
	s.router.GET("/health/db", healthHandler.HealthDB)
	// GET /swagger/* — интерактивная документация API.
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAuthRoutes настраивает эндпоинты аутентификации и корневой роут API.
func (s *Server) setupAuthRoutes() {
	v1 := s.router.Group("/api/v1")

	// GET /api/v1/ — корневой эндпоинт API v1, возвращает версию и базовую информацию.
	v1.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Gym Planner API v1",
			"version": "1.0.0",
		})
	})

	authGroup := v1.Group("/auth")
	{
		// POST /api/v1/auth/register — регистрация нового пользователя по email/паролю/username.
		authGroup.POST("/register", s.authHandler.Register)
		// POST /api/v1/auth/login — аутентификация пользователя по email/паролю.
		authGroup.POST("/login", s.authHandler.Login)
		// POST /api/v1/auth/refresh — обновление пары access/refresh токенов по refresh-токену.
		authGroup.POST("/refresh", s.authHandler.Refresh)
	}

	// Каталог упражнений общий и доступен на чтение без аутентификации.
	exercises := v1.Group("/exercises")
	{
		exercises.GET("", s.exerciseHandler.List)
		exercises.GET("/:id", s.exerciseHandler.Get)
	}
}

// setupAPIRoutes настраивает защищённые эндпоинты предметной области.
func (s *Server) setupAPIRoutes() {
	v1 := s.router.Group("/api/v1")
	v1.Use(middleware.Auth(s.jwtService))

	userGroup := v1.Group("/users")
	{
		// GET /api/v1/users/me — профиль текущего пользователя.
		userGroup.GET("/me", s.userHandler.GetMe)
		// PUT /api/v1/users/me — обновить профиль текущего пользователя.
		userGroup.PUT("/me", s.userHandler.UpdateMe)
		// DELETE /api/v1/users/me — мягко удалить аккаунт текущего пользователя.
		userGroup.DELETE("/me", s.userHandler.DeleteMe)
	}

	// Подходы пользователя по конкретному упражнению каталога:
	// само упражнение общее, но выборка идёт по владельцу подходов.
	v1.GET("/exercises/:id/sets", s.exerciseHandler.ListSets)

	// Привязки пользователя к упражнениям каталога.
	userExercises := v1.Group("/user_exercises")
	{
		userExercises.POST("", s.ueHandler.Create)
		userExercises.GET("", s.ueHandler.List)
		userExercises.GET("/:id", s.ueHandler.Get)
		userExercises.PATCH("", s.ueHandler.Update)
		userExercises.DELETE("/:id", s.ueHandler.Delete)
	}

	workouts := v1.Group("/workouts")
	{
		workouts.POST("", s.workoutHandler.Create)
		workouts.GET("", s.workoutHandler.List)
		workouts.GET("/:id", s.workoutHandler.Get)
		workouts.GET("/:id/workout_exercises", s.workoutHandler.ListExercises)
		workouts.PATCH("", s.workoutHandler.Update)
		workouts.DELETE("/:id", s.workoutHandler.Delete)
	}

	trainings := v1.Group("/trainings")
	{
		trainings.POST("", s.trainingHandler.Create)
		trainings.GET("", s.trainingHandler.List)
		trainings.GET("/:id", s.trainingHandler.Get)
		trainings.PATCH("", s.trainingHandler.Update)
		trainings.DELETE("/:id", s.trainingHandler.Delete)
	}

	plans := v1.Group("/plans")
	{
		plans.POST("", s.planHandler.Create)
		plans.GET("", s.planHandler.List)
		plans.GET("/:id", s.planHandler.Get)
		plans.PATCH("", s.planHandler.Update)
		plans.DELETE("/:id", s.planHandler.Delete)
	}
}

// Start запускает HTTP сервер с graceful shutdown
func (s *Server) Start() error {
	address := s.cfg.Server.Address()

	s.httpServer = &http.Server{
		Addr:           address,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Канал для получения сигналов ОС
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Канал для ошибок запуска сервера
	serverErr := make(chan error, 1)

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("HTTP сервер запущен на %s", address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("ошибка запуска HTTP сервера: %w", err)
		}
	}()

	// Ожидаем либо сигнал для graceful shutdown, либо ошибку запуска
	select {
	case err := <-serverErr:
		// Если сервер не смог запуститься, пытаемся корректно остановить
		log.Printf("Ошибка запуска сервера: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpServer.Shutdown(ctx)
		return err
	case sig := <-quit:
		log.Printf("Получен сигнал %v для остановки сервера...", sig)
	}

	// Создаем контекст с таймаутом для graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Останавливаем сервер
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	log.Println("HTTP сервер успешно остановлен")
	return nil
}

// GetRouter возвращает роутер (для тестирования)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
