/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"yatube/internal/app"
	"yatube/internal/config"
	"yatube/internal/handler"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/view"

	"github.com/gorilla/sessions"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml config (env-only when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewGormUserRepository(db)
	groupRepo := repository.NewGormGroupRepository(db)
	postRepo := repository.NewGormPostRepository(db)

	authService := service.NewAuthService(userRepo, logger)
	feedService := service.NewFeedService(cfg.Posts.PageSize, postRepo, groupRepo, userRepo, logger)
	postService := service.NewPostService(cfg.Posts.MinTextLength, postRepo, logger)

	cookieStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
	}

	templates, err := view.LoadTemplates(cfg.Server.TemplateDir)
	if err != nil {
		logger.Error("loading templates", "error", err)
		os.Exit(1)
	}
	renderer := view.NewPageRenderer(templates)

	router := handler.NewRouter(feedService, postService, authService, groupRepo, cookieStore, renderer, logger)

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		logger.Info("received stop signal, shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during shutdown", "error", err)
		}
		close(done)
	}()

	logger.Info("http server starting", "addr", server.Addr, "driver", cfg.Database.Driver)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
	<-done
}
