package main

import (
	"context"
	"log"
	"os"

	"github.com/anunciabr/anuncia/internal/buildinfo"
	"github.com/anunciabr/anuncia/internal/client/cli"
	"github.com/anunciabr/anuncia/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
