/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fakebooker is an in-memory stand-in for the restful-booker
// service, used to exercise the test harness without network access.
package fakebooker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
)

const shutdownTimeout = 5 * time.Second

// NewRouter returns the full service with its middleware stack.
func NewRouter(options *Options, store *Store, logger logr.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger, options.Debug))

	if options.Latency > 0 {
		r.Use(latency(options.Latency))
	}

	NewHandler(store, options, logger).Routes(r)

	return r
}

func requestLogger(logger logr.Logger, debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !debug {
				next.ServeHTTP(w, r)
				return
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"requestID", chimw.GetReqID(r.Context()),
				"traceparent", r.Header.Get("Traceparent"),
			)
		})
	}
}

func latency(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(d):
			case <-r.Context().Done():
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Server runs the fake service until its context is cancelled.
type Server struct {
	options *Options
	logger  logr.Logger
	server  *http.Server
}

func NewServer(options *Options, logger logr.Logger) *Server {
	return &Server{
		options: options,
		logger:  logger,
		server: &http.Server{
			Addr:              options.ListenAddress,
			Handler:           NewRouter(options, NewStore(), logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)

	go func() {
		s.logger.Info("listening", "address", s.options.ListenAddress)

		errs <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Info("stopped")

	return nil
}
