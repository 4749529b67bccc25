// Package main implements the flashcards command: an interactive menu for
// managing question/answer cards kept in a local JSON file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	configFlag := flag.String("config", "", "Path to a config file (default: ./config.yaml if present)")
	flag.Parse()

	// A missing .env is normal; anything else is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
	}

	app, err := initializeApp(*configFlag, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if err := app.run(context.Background()); err != nil {
		slog.Error("flashcards exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
