package main

import (
	"log"

	"spin2win/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
