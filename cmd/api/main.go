package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/grantreports/core/cmd/api/commands"
)

// @title GrantReports API
// @version 1.0
// @description Session-scoped report builder for grant monitoring forms: reports, sections, tasks, questions and grants.

// @contact.name GrantReports Support
// @contact.url https://github.com/grantreports/core

// @license.name MIT
// @license.url https://github.com/grantreports/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "grantreports",
		Short: "GrantReports API Server",
		Long:  `GrantReports lets grant officers design monitoring report forms. Every visitor works on their own reports and grants, kept in a server-side session.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewSessionsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
