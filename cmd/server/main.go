package main

import (
	"context"
	"log"

	"github.com/reflecta-app/reflecta/internal/server"
	"github.com/reflecta-app/reflecta/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
