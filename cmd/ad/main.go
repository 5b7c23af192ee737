package main

import (
	"os"

	"github.com/mkrogh/annodoc/cmd/ad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
