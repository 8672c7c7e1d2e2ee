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

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
	"github.com/nscaledev/restful-booker-tests/test/api"
)

var _ = Describe("Authentication", func() {
	Context("When creating an auth token", func() {
		Describe("Given valid admin credentials", func() {
			It("should return a token", func() {
				token, resp, err := client.CreateAuthToken(ctx, config.Credentials())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(resp).To(api.MatchSchema(openapi.SchemaAuthResponse))
				Expect(token).NotTo(BeEmpty())
			})
		})

		Describe("Given the suite user's credentials", func() {
			It("should not return a token", func() {
				token, resp, err := client.CreateAuthToken(ctx, api.Credentials{
					Username: fixture.User.Username,
					Password: fixture.User.Password,
				})
				Expect(err).To(MatchError(api.ErrBadCredentials))
				Expect(resp).To(api.HaveStatus(http.StatusOK))
				Expect(token).To(BeEmpty())
			})
		})
	})
})
