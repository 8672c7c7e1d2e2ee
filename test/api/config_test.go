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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/restful-booker-tests/test/api"
)

// setenv sets a variable for the duration of the spec.
func setenv(key, value string) {
	previous, ok := os.LookupEnv(key)

	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if ok {
			_ = os.Setenv(key, previous)
			return
		}

		_ = os.Unsetenv(key)
	})
}

var _ = Describe("LoadTestConfig", func() {
	It("should apply overrides from the environment", func() {
		setenv("API_BASE_URL", "http://localhost:3001")
		setenv("REQUEST_TIMEOUT", "5s")
		setenv("MAX_RESPONSE_TIME", "750ms")
		setenv("FAKER_SEED", "1234")
		setenv("USE_FAKE_BOOKER", "true")
		setenv("LOG_REQUESTS", "true")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.BaseURL).To(Equal("http://localhost:3001"))
		Expect(config.RequestTimeout).To(Equal(5 * time.Second))
		Expect(config.MaxResponseTime).To(Equal(750 * time.Millisecond))
		Expect(config.FakerSeed).To(Equal(uint64(1234)))
		Expect(config.UseFakeBooker).To(BeTrue())
		Expect(config.LogRequests).To(BeTrue())
	})

	It("should fall back to defaults for malformed values", func() {
		setenv("REQUEST_TIMEOUT", "soon")
		setenv("FAKER_SEED", "-1")
		setenv("SKIP_INTEGRATION", "perhaps")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.RequestTimeout).To(Equal(30 * time.Second))
		Expect(config.FakerSeed).To(BeZero())
		Expect(config.SkipIntegration).To(BeFalse())
	})

	It("should reject a relative base URL", func() {
		setenv("API_BASE_URL", "restful-booker.herokuapp.com")
		setenv("USE_FAKE_BOOKER", "false")

		_, err := api.LoadTestConfig()
		Expect(err).To(MatchError(ContainSubstring("API_BASE_URL")))
	})

	It("should expose the admin credentials", func() {
		setenv("ADMIN_USERNAME", "operator")
		setenv("ADMIN_PASSWORD", "hunter2")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.Credentials()).To(Equal(api.Credentials{Username: "operator", Password: "hunter2"}))
	})
})
