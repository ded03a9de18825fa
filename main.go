package main

import (
	"os"

	"github.com/Pratham-0827/Regex-Tutorial/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
