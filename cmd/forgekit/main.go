package main

import (
	"os"

	"github.com/forgekit/forgekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
