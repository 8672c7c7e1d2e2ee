/*
Copyright 2024-2025 the Unikorn Authors.
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

// Package api provides black-box test utilities for the restful-booker API.
//
// # Separate Client Implementation
//
// This package maintains its own HTTP client (APIClient) rather than a
// generated one. Every legitimate change to the service contract needs a
// compensating change here, which keeps API evolution explicit and
// reviewable. The client is also tailored for testing:
//   - W3C trace context propagation for request correlation
//   - exactly one round trip per call with measured latency
//   - explicit token passing, nothing is shared between specs
//   - direct access to HTTP status codes and response bodies
//
// # Logging
//
// Every exchange is recorded and only written out when a spec fails, see
// LogExchangesOnFailure. LOG_REQUESTS and LOG_RESPONSES additionally log as
// requests happen.
//
// # Test Data
//
// Generator wraps gofakeit. Set FAKER_SEED to reproduce a run.
package api
