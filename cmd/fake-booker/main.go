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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nscaledev/restful-booker-tests/internal/fakebooker"
)

func main() {
	options := fakebooker.DefaultOptions()

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	config := zap.NewProductionConfig()
	if options.Debug {
		config = zap.NewDevelopmentConfig()
	}

	zapLogger, err := config.Build()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer func() { _ = zapLogger.Sync() }()

	logger := zapr.NewLogger(zapLogger).WithName("fake-booker")
	logger.Info("service starting", "address", options.ListenAddress, "latency", options.Latency.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fakebooker.NewServer(options, logger).Run(ctx); err != nil {
		logger.Error(err, "server failed")
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
