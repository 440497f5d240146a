// Command server runs the time-tracking HTTP API.
package main

import (
	"context"
	"log"

	_ "time/tzdata"

	"github.com/heartmarshall/timetracker-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
