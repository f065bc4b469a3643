package main

import (
	"log"
	"os"

	"github.com/learnlife319/app/cmd/commands"
	_ "github.com/learnlife319/app/docs"
	"github.com/spf13/cobra"
)

// @title TOEFL Prep API
// @version 1.0
// @description API for TOEFL study material, practice answers, comments and progress tracking

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The access_token cookie is accepted as well.
func main() {
	serveCmd := commands.NewServeCommand()

	rootCmd := &cobra.Command{
		Use:   "toefl",
		Short: "TOEFL Prep API server",
		Long:  "TOEFL Prep serves reading passages, vocabulary, practice answers, listening lessons and progress tracking over a REST API.",
		// Running without a subcommand starts the server
		RunE: serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewGrantAdminCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
