package main

import (
	"log"
	_ "time/tzdata"

	"github.com/ibeloyar/returndesk/internal/app"
	"github.com/ibeloyar/returndesk/internal/config"
	"github.com/ibeloyar/returndesk/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		lg.Fatal(err)
	}
}
