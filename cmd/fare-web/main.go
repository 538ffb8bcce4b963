// README: Entry point; loads config, wires the pricing service and form shell, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"taxifare/internal/config"
	httptransport "taxifare/internal/http"
	"taxifare/internal/modules/form"
	"taxifare/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	client := pricing.NewClient(cfg.Predict.Endpoint, cfg.Predict.Timeout)
	pricingSvc := pricing.NewService(client, cfg.Predict.Timeout)
	shell := form.NewShell(pricingSvc)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Shell:          shell,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[HTTP] shutdown: %v", err)
		}
	}()

	log.Printf("[HTTP] listening addr=%s predict_endpoint=%s", cfg.HTTP.Addr, cfg.Predict.Endpoint)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
