package main

import (
	"context"
	"fmt"
	"os"

	"fleet/cmd"
	fleethttp "fleet/internal/adapters/in/http"
	fleetpostgres "fleet/internal/adapters/out/postgres"
	"fleet/internal/adapters/out/postgres/maintenancerepo"
	"fleet/internal/adapters/out/postgres/vehiclerepo"
	"fleet/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	if err := fleetpostgres.SeedVehicles(context.Background(), gormDB); err != nil {
		log.Fatalf("Failed to seed vehicles: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := jobs.NewJobManager(
		app.CreateOpenMaintenanceReportQueryHandler(),
		app.Logger(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		OrchestratorURL:    goDotEnvVariable("ORCHESTRATOR_URL"),
		OrchestratorAPIKey: goDotEnvVariable("ORCHESTRATOR_API_KEY"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&maintenancerepo.MaintenanceDTO{},
		&maintenancerepo.PartOrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := fleethttp.NewServer(
		app.CreateRegisterVehicleCommandHandler(),
		app.CreateRetireVehicleCommandHandler(),
		app.CreateStartMaintenanceCommandHandler(),
		app.CreateOrderPartsCommandHandler(),
		app.CreateCompleteMaintenanceCommandHandler(),
		app.CreateListVehiclesQueryHandler(),
		app.CreateListMaintenancesQueryHandler(),
		app.CreateListPartOrdersQueryHandler(),
		app.CreateFleetSyncQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
