// Command server exposes the declension engines as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/inflect?word=<text>&lang=<code>&case=<name>[&policy=auto|name|phrase]
//	POST /api/inflect/text  body: {"text":"...","lang":"ru","case":"genitive","every_word":false}
//	POST /api/inflect/html  body: {"html":"...","selector":"#src","target":"#dst","lang":"kz","case":"ilik"}
//	GET  /api/languages
//	GET  /healthz
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/cours-de-latin/declension"
	"github.com/cours-de-latin/declension/internal/config"
	"github.com/cours-de-latin/declension/internal/logging"
	"github.com/cours-de-latin/declension/kz"
	"github.com/cours-de-latin/declension/ru"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		logrus.Fatalf("failed to set up logging: %v", err)
	}

	reg, err := newRegistry(cfg.Exceptions)
	if err != nil {
		log.WithError(err).Fatal("failed to build engines")
	}
	log.WithField("languages", reg.Languages()).Info("engines loaded")

	c := cors.New(cors.Options{
		AllowedOrigins: config.Split(cfg.CORS.AllowedOrigins),
		AllowedMethods: config.Split(cfg.CORS.AllowedMethods),
		AllowedHeaders: config.Split(cfg.CORS.AllowedHeaders),
		MaxAge:         cfg.CORS.MaxAge,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      c.Handler(newMux(reg, log, cfg.Server.MaxBodyBytes)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

// newRegistry builds both engines, overlaying the configured exception
// files, and registers them.
func newRegistry(exc config.ExceptionsConfig) (*declension.Registry, error) {
	var ruOpts []ru.Option
	if exc.RU != "" {
		t, err := declension.LoadExceptionsFile(exc.RU)
		if err != nil {
			return nil, err
		}
		ruOpts = append(ruOpts, ru.WithExceptions(t))
	}
	var kzOpts []kz.Option
	if exc.KZ != "" {
		t, err := declension.LoadExceptionsFile(exc.KZ)
		if err != nil {
			return nil, err
		}
		kzOpts = append(kzOpts, kz.WithExceptions(t))
	}

	ruEngine, err := ru.New(ruOpts...)
	if err != nil {
		return nil, err
	}
	kzEngine, err := kz.New(kzOpts...)
	if err != nil {
		return nil, err
	}
	return declension.NewRegistry(ruEngine.Language(), kzEngine.Language())
}
