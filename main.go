package main

import (
	"context"
	"time"

	"imokay/config"
	"imokay/engine"
	"imokay/gemini"
	"imokay/models"
	"imokay/routes"
	"imokay/store"
	"imokay/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eng := engine.New(cfg)
	st := store.New(utils.GetRedis(), cfg.WarningThreshold(), cfg.AlertThreshold())
	if err := st.Load(appCtx, time.Now()); err != nil {
		utils.Sugar.Fatalf("state load failed: %v", err)
	}

	// Startup expiry sweep: a stale streak is zeroed before anything is served.
	sweep := func() {
		st.Update(appCtx, func(s *models.UserState) {
			if eng.SweepExpiry(s, time.Now()) {
				utils.Sugar.Infow("streak expired", "last_check_in", s.LastCheckIn)
			}
		})
	}
	sweep()
	utils.StartSweeper(appCtx, cfg.SweepInterval(), sweep)

	gen, err := gemini.NewClient(appCtx, cfg)
	if err != nil {
		utils.Sugar.Fatalf("gemini client init failed: %v", err)
	}

	r := routes.SetupRouter(appCtx, st, eng, gen)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
