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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/restful-booker-tests/test/api"
)

var _ = Describe("Health", func() {
	It("should answer the health check with 201", func() {
		resp, err := client.HealthCheck(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp).To(api.HaveStatus(http.StatusCreated))
		Expect(resp).To(api.RespondWithin(config.MaxResponseTime))
	})
})
