package main

import (
	"os"

	"github.com/Shivam2709/attendance-cli/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
