package main

import (
	"context"
	"log"
	"os"

	"github.com/dkrasnov/inkpress/internal/buildinfo"
	"github.com/dkrasnov/inkpress/internal/client/cli"
	"github.com/dkrasnov/inkpress/internal/client/config"
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
