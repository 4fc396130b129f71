package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"kundali-api/internal/adapters/ephemeris/sweph"
	"kundali-api/internal/platform/logger"
	"kundali-api/internal/ports/ephemeris"
	"kundali-api/internal/router"
)

func main() {
	// .env es opcional: en prod las vars vienen del entorno.
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var engine ephemeris.Engine
	if ephePath := os.Getenv("EPHE_PATH"); ephePath != "" {
		ayanamsa, ok := ephemeris.ParseAyanamsa(os.Getenv("AYANAMSHA"))
		if !ok {
			log.Error("invalid AYANAMSHA", map[string]any{"value": os.Getenv("AYANAMSHA")})
			os.Exit(1)
		}

		eng, err := sweph.New(sweph.Config{EphePath: ephePath, Ayanamsa: ayanamsa})
		if err != nil {
			log.Error("ephemeris init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		engine = eng
		log.Info("swiss ephemeris loaded", map[string]any{"path": ephePath, "ayanamsa": string(ayanamsa)})
	}
	// engine == nil => el router cae al motor fake (modo dev).

	r := router.NewRouter(router.Options{
		Engine: engine,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	if engine != nil {
		_ = engine.Close()
	}
	log.Info("server stopped", nil)
}
