package main

import (
	"os"

	"github.com/robocook/foon/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
