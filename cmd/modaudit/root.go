package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/modaudit/internal/config"
	"github.com/gyeh/modaudit/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "modaudit",
	Short: "Workers' comp experience-mod leak auditor",
	Long:  "Audits workers' compensation policies for experience-mod computation errors, quantifies the recoverable premium, and stores the audit evidence in Postgres.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("MODAUDIT_DB_URL"), "Postgres connection string (or set MODAUDIT_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
