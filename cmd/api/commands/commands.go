package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/shopease/core/internal/adapters/repository"
	"github.com/shopease/core/internal/application/services"
	"github.com/shopease/core/internal/infrastructure/config"
	"github.com/shopease/core/internal/infrastructure/database"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ShopEase API server",
		Long:  "Start the ShopEase API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage the optional PostgreSQL user store migrations (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the product collection with sample data",
		Run: func(cmd *cobra.Command, args []string) {
			seedProducts()
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ShopEase version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ShopEase Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	stores, db, cleanup, err := buildStores(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", "error", err)
	}
	defer cleanup()

	srv, err := server.New(cfg, stores, db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting ShopEase API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"storage_driver", cfg.Storage.Driver,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}
}

// buildStores wires the configured storage backings. The returned cleanup
// closes whatever was opened.
func buildStores(cfg *config.Config) (server.Stores, *database.DB, func(), error) {
	var (
		stores  server.Stores
		db      *database.DB
		closers []func()
	)

	switch cfg.Storage.Driver {
	case "bolt":
		col, err := repository.NewBoltCollection(cfg.Storage.DataDir)
		if err != nil {
			return stores, nil, nil, err
		}
		closers = append(closers, func() { col.Close() })
		stores.Collection = col
	default:
		col, err := repository.NewFileCollection(cfg.Storage.DataDir)
		if err != nil {
			return stores, nil, nil, err
		}
		stores.Collection = col
	}

	if cfg.Storage.Users == "postgres" {
		conn, err := database.New(cfg.Database)
		if err != nil {
			return stores, nil, nil, err
		}
		closers = append(closers, func() { conn.Close() })
		db = conn
		stores.Users = repository.NewPostgresUserStore(conn.DB)
		stores.Settings = repository.NewPostgresSettingsStore(conn.DB)
	} else {
		stores.Users = repository.NewMemoryUserStore(repository.SeedUsers())
		stores.Settings = repository.NewMemorySettingsStore()
	}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	return stores, db, cleanup, nil
}

func runMigration(direction string) {
	m := newMigrator()

	var err error
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	m := newMigrator()

	version, dirty, err := m.Version()
	if err != nil {
		log.Fatalf("Failed to get migration version: %v", err)
	}

	fmt.Printf("Current migration version: %d\n", version)
	fmt.Printf("Dirty: %t\n", dirty)
}

func newMigrator() *migrate.Migrate {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	return m
}

func seedProducts() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	col, err := repository.NewFileCollection(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	productService := services.NewProductService(repository.NewProductRepository(col), appLogger)

	samples := []services.CreateProductRequest{
		{Name: "Wireless Headphones", Price: 89.99, Stock: 25, Category: "electronics", Description: "Over-ear wireless headphones with noise cancellation"},
		{Name: "Smart Watch", Price: 199.99, Stock: 12, Category: "electronics", Description: "Fitness tracking smart watch"},
		{Name: "Canvas Backpack", Price: 49.50, Stock: 40, Category: "accessories", Description: "Water-resistant canvas backpack"},
		{Name: "Ceramic Mug Set", Price: 24.00, Stock: 60, Category: "home", Description: "Set of four ceramic mugs"},
		{Name: "Desk Lamp", Price: 34.95, Stock: 18, Category: "home", Description: "Adjustable LED desk lamp"},
	}

	ctx := context.Background()
	for _, sample := range samples {
		if _, err := productService.Create(ctx, sample); err != nil {
			log.Fatalf("Failed to seed product %q: %v", sample.Name, err)
		}
		// Product ids derive from a millisecond timestamp; keep them unique.
		time.Sleep(2 * time.Millisecond)
	}

	fmt.Printf("Seeded %d products into %s\n", len(samples), cfg.Storage.DataDir)
}
