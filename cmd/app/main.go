package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/actorrepo"
	"logistics/internal/adapters/out/postgres/eventrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/spf13/pflag"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrateDatabase(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		root.CreateDailyCountsQueryHandler(),
		root.CreateOrdersByStatusQueryHandler(),
		root.CreateAverageDeliveryDurationQueryHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

// getConfigs resolves configuration from a .env file, the environment, and
// command-line flag overrides, in that order.
func getConfigs() cmd.Config {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "logistics"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}

	pflag.StringVar(&config.HTTPPort, "http-port", config.HTTPPort, "HTTP listen port")
	pflag.StringVar(&config.DBHost, "db-host", config.DBHost, "database host")
	pflag.StringVar(&config.DBPort, "db-port", config.DBPort, "database port")
	pflag.StringVar(&config.DBUser, "db-user", config.DBUser, "database user")
	pflag.StringVar(&config.DBPassword, "db-password", config.DBPassword, "database password")
	pflag.StringVar(&config.DBName, "db-name", config.DBName, "database name")
	pflag.StringVar(&config.DBSslMode, "db-sslmode", config.DBSslMode, "database SSL mode")
	pflag.Parse()

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// mustOpenDatabase opens the database through lib/pq so driver errors such as
// unique violations keep their native form, then hands the connection to GORM.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to reach database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&actorrepo.ActorDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&eventrepo.EventDTO{},
		&warehouserepo.WarehouseDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.CreateRegisterActorCommandHandler(),
		root.CreateUpdateActorRoleCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateTransitionShipmentCommandHandler(),
		root.CreateDeleteShipmentCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateCreateEventCommandHandler(),
		root.CreateCreateWarehouseCommandHandler(),
		root.CreateResolveTrackingQueryHandler(),
		root.CreateDailyCountsQueryHandler(),
		root.CreateOrdersByStatusQueryHandler(),
		root.CreateAverageDeliveryDurationQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
