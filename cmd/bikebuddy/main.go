package main

import (
	"os"

	"github.com/hakambing/bikebuddy-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
