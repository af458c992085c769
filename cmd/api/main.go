package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopease/core/cmd/api/commands"
)

// @title ShopEase API
// @version 1.0
// @description Storefront and admin back-office API for the ShopEase store.

// @host localhost:3001
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "shopease",
		Short: "ShopEase API Server",
		Long:  `ShopEase is an e-commerce storefront and admin back-office API backed by flat JSON collections.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
