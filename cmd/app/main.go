package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"propertyservice/cmd"
	_ "propertyservice/docs"
	httpin "propertyservice/internal/adapters/in/http"
	"propertyservice/internal/adapters/out/postgres/listingrepo"
	"propertyservice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Property Listing Service API
//	@version		1.0
//	@description	Property listing catalog with an approval workflow and filtered search.
//	@BasePath		/

func main() {
	configs := getConfigs()
	dsn := makeConnectionString(configs)

	sqlDB := mustConnectSQL(dsn)
	gormDB := mustConnectGorm(dsn)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateArchiveSoldListingsCommandHandler(),
		configs.ArchivalSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, sqlDB, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		ArchivalSchedule: goDotEnvVariable("ARCHIVAL_CRON_SPEC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func makeConnectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

// mustConnectSQL opens a raw database/sql connection and verifies it.
// Failing fast here surfaces misconfiguration before the server starts;
// the connection then backs the health endpoint.
func mustConnectSQL(dsn string) *sql.DB {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	return sqlDB
}

func mustConnectGorm(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&listingrepo.LocationDTO{}, &listingrepo.PropertyDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, sqlDB *sql.DB, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateListingCommandHandler(),
		app.CreateUpdateListingCommandHandler(),
		app.CreateChangeApprovalCommandHandler(),
		app.CreateDeleteListingCommandHandler(),
		app.CreateGetListingByIDQueryHandler(),
		app.CreateListAllListingsQueryHandler(),
		app.CreateListApprovedListingsQueryHandler(),
		app.CreateListPendingListingsQueryHandler(),
		app.CreateListOwnerListingsQueryHandler(),
		app.CreateFilterListingsQueryHandler(),
		sqlDB,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
