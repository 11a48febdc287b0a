package main

import (
	"os"

	"github.com/fjglira/mdsite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
