package main

import (
	"os"

	"github.com/ariel-frischer/semlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
