package main

import (
	"github.com/cppla/gifter/config"
	"github.com/cppla/gifter/routes"
	"github.com/cppla/gifter/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db := config.InitDatabase(config.Models()...)

	r := routes.SetupRouter(db)

	utils.Sugar.Infow("starting server", "port", cfg.AppPort, "driver", cfg.DBDriver)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
