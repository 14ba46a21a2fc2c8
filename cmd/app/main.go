package main

import (
	"fmt"
	"log/slog"
	"os"

	"moving/cmd"
	"moving/internal/adapters/in/http"
	"moving/internal/adapters/out/catalog"
	"moving/internal/adapters/out/postgres/moverepo"
	"moving/internal/adapters/out/postgres/moverrepo"
	"moving/internal/core/domain/model/inventory"
	"moving/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	itemCatalog, err := catalog.LoadFile(configs.CatalogPath)
	if err != nil {
		log.Fatalf("Error loading item catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateAssignMoverCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, itemCatalog, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		CatalogPath: goDotEnvVariable("CATALOG_PATH"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&moverepo.MoveDTO{},
		&moverrepo.MoverDTO{},
		&moverrepo.CrewMemberDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, itemCatalog inventory.Catalog, port string) {
	e := echo.New()

	server := http.NewServer(
		itemCatalog,
		app.CreateCreateMoveCommandHandler(),
		app.CreateCreateMoverCommandHandler(),
		app.CreateAddCrewMemberCommandHandler(),
		app.CreateTransitionMoveStatusCommandHandler(),
		app.CreateGetClientMovesQueryHandler(),
		app.CreateGetMoverDashboardQueryHandler(),
		app.CreateGetUncompletedMovesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
