// Package main provides the entry point for the cook_scraper CLI.
package main

import (
	"os"

	"github.com/jonathan/cook-scraper/internal/textutil"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		textutil.Eprintf("Error: %v\n", err)
		os.Exit(1)
	}
}
