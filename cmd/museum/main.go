package main

import (
	"log"

	"github.com/MrSnakeDoc/museum/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ museum failed to start: %v", err)
	}
}
