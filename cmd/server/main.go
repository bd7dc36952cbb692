// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joho/godotenv"

	boardv1 "github.com/tanercay/goalgrid/api/proto/board/v1/generated"
	recurringv1 "github.com/tanercay/goalgrid/api/proto/recurring/v1/generated"
	taskv1 "github.com/tanercay/goalgrid/api/proto/task/v1/generated"
	ent "github.com/tanercay/goalgrid/ent/generated"
	"github.com/tanercay/goalgrid/ent/generated/migrate"
	"github.com/tanercay/goalgrid/internal/config"
	"github.com/tanercay/goalgrid/internal/database"
	"github.com/tanercay/goalgrid/internal/middleware"
	"github.com/tanercay/goalgrid/internal/repository"
	"github.com/tanercay/goalgrid/internal/service"
	"github.com/tanercay/goalgrid/pkg/events"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with Ent
	log.Println("Connecting to PostgreSQL with Ent...")
	dbConfig := database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Debug:    cfg.Server.Environment == "development",
	}
	entClient, err := database.NewEntClient(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := entClient.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	sqlxDB, err := database.NewSqlxDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open stats connection: %v", err)
	}
	defer sqlxDB.Close()

	if cfg.Server.AutoMigrate {
		if err := runAutoMigration(context.Background(), entClient); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Repositories
	taskRepo := repository.NewEntTaskRepository(entClient)
	templateRepo := repository.NewEntTemplateRepository(entClient)
	statsRepo := repository.NewStatsRepository(sqlxDB)

	// Engine
	eventService := service.NewEventService(entClient, events.NewLogDispatcher())
	resolver := service.NewDependencyResolver(entClient)
	propagator := service.NewPropagator(entClient, eventService)
	guard := service.NewTransitionGuard(entClient, resolver, propagator, eventService)

	// gRPC services
	taskService := service.NewTaskService(entClient, taskRepo, guard)
	boardService := service.NewBoardService(entClient, taskRepo, statsRepo, guard)
	recurringService := service.NewRecurringService(templateRepo, taskRepo, eventService)

	// Middleware
	ownerExtractor := middleware.NewOwnerExtractorInterceptor()
	validationInterceptor := middleware.NewValidationInterceptor(middleware.DefaultValidationConfig())

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			ownerExtractor.Unary(),
			validationInterceptor.Unary(),
			loggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			ownerExtractor.Stream(),
		),
	)

	taskv1.RegisterTaskServiceServer(grpcServer, taskService)
	boardv1.RegisterBoardServiceServer(grpcServer, boardService)
	recurringv1.RegisterRecurringServiceServer(grpcServer, recurringService)

	// Health checks
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("task.v1.TaskService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("board.v1.BoardService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("recurring.v1.RecurringService", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	if cfg.Server.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	// Recurring task scheduler
	var scheduler *service.SchedulerService
	if cfg.Scheduler.Enabled {
		scheduler = service.NewSchedulerService(time.Local)
		pass := func() {
			recurringService.GenerationPass(context.Background(), time.Now())
		}
		if _, err := scheduler.ScheduleDaily(cfg.Scheduler.DailyTime, pass); err != nil {
			log.Fatalf("Failed to schedule generation pass: %v", err)
		}
		if cfg.Scheduler.Interval > 0 {
			if _, err := scheduler.ScheduleInterval(cfg.Scheduler.Interval, pass); err != nil {
				log.Fatalf("Failed to schedule interval pass: %v", err)
			}
		}
		scheduler.Start()
		log.Printf("🔄 Recurring task scheduler running (daily at %s)", cfg.Scheduler.DailyTime)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	go func() {
		log.Printf("🚀 GoalGrid gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	if scheduler != nil {
		scheduler.Stop()
	}
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// runAutoMigration runs the auto migration
func runAutoMigration(ctx context.Context, client *ent.Client) error {
	log.Println("🔄 Running auto migration...")
	err := client.Schema.Create(
		ctx,
		migrate.WithDropIndex(true),
		migrate.WithDropColumn(true),
		migrate.WithForeignKeys(true),
	)
	if err != nil {
		return fmt.Errorf("run auto migration: %w", err)
	}
	log.Println("✅ Auto migration completed")
	return nil
}

// loggingInterceptor logs incoming requests
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	clientInfo := middleware.GetClientInfoFromContext(ctx)
	resp, err := handler(ctx, req)
	duration := time.Since(start)
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (owner: %s, ip: %s)",
		logLevel, info.FullMethod, duration, clientInfo.OwnerID, clientInfo.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", info.FullMethod, err)
	}
	return resp, err
}
