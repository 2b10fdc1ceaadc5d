package main

import (
	"os"

	"github.com/msto63/mdwtime/cmd/todctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
