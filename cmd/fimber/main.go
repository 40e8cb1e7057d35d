package main

import (
	"os"

	"github.com/magillus/flutter-fimber/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
