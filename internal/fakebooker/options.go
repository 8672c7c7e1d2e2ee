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

package fakebooker

import (
	"time"

	"github.com/spf13/pflag"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ListenAddress is where the HTTP server binds.
	ListenAddress string

	// AdminUsername and AdminPassword are the only credentials that
	// yield a token, and are also accepted as Basic auth on writes.
	AdminUsername string
	AdminPassword string

	// Latency is added to every response.
	Latency time.Duration

	// Debug enables per-request logging.
	Debug bool
}

// DefaultOptions mirrors the public restful-booker deployment.
func DefaultOptions() *Options {
	return &Options{
		ListenAddress: ":3001",
		AdminUsername: "admin",
		AdminPassword: "password123",
	}
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", o.ListenAddress, "Address to serve the booking API on.")
	f.StringVar(&o.AdminUsername, "admin-username", o.AdminUsername, "Username accepted by /auth.")
	f.StringVar(&o.AdminPassword, "admin-password", o.AdminPassword, "Password accepted by /auth.")
	f.DurationVar(&o.Latency, "latency", o.Latency, "Artificial latency added to every response.")
	f.BoolVar(&o.Debug, "debug", o.Debug, "Log every request.")
}
