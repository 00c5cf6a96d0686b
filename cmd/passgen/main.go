package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/cli"
)

var version = "dev"

func main() {
	// A missing .env is fine; the environment is used as-is.
	_ = godotenv.Load()

	os.Exit(cli.Execute(version, os.Args[1:]))
}
