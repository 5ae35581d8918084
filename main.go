package main

import (
	"os"

	"github.com/projecthub/projecthub/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
