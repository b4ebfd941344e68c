package main

import (
	"os"

	"github.com/AnthonyWong1216/hmcscannerdraw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
