package main

import (
	"os"

	"github.com/runnerr0/chromium-export/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Main(version, os.Args[1:]))
}
