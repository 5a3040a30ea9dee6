package main

import (
	"os"

	"taskmanager/internal/manage"
)

func main() {
	if err := manage.Execute(); err != nil {
		os.Exit(1)
	}
}
