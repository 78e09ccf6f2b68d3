package main

import (
	"fmt"
	"os"

	"codeberg.org/branchadmin/server/internal/config"
	"github.com/spf13/cobra"
)

var (
	baseURL       string
	selectorsPath string
	logFile       string
	rejectStale   bool
	printResult   bool
)

var rootCmd = &cobra.Command{
	Use:   "assist",
	Short: "Generate review replies and mailing texts on branch admin pages",
	Long: `assist loads a branch admin change form, mounts the generation assistant
on it and lets you edit the field in the terminal. Press Ctrl+G to generate.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.LoadAssistEnvironment()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseURL, "base-url", defaults.BaseURL, "admin backend base URL (ADMIN_BASE_URL)")
	flags.StringVar(&selectorsPath, "selectors", defaults.SelectorsPath, "YAML selector profile (ASSIST_SELECTORS)")
	flags.StringVar(&logFile, "log-file", defaults.LogFile, "file the assistant logs to (ASSIST_LOG_FILE)")
	flags.BoolVar(&rejectStale, "reject-stale", false, "ignore completions of superseded requests")
	flags.BoolVar(&printResult, "print", false, "print the final field text to stdout on exit")

	rootCmd.AddCommand(replyCmd, mailingCmd)
}
