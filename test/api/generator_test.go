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
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
	"github.com/nscaledev/restful-booker-tests/test/api"
)

var _ = Describe("Generator", func() {
	const iterations = 500

	// Late in the day so a naive local date conversion would roll over.
	now := time.Date(2026, time.March, 14, 23, 59, 30, 0, time.UTC)
	clock := func() time.Time { return now }

	It("should produce prices in range with at most two decimals", func() {
		generator := api.NewGenerator(0, clock)

		for range iterations {
			price := generator.TotalPrice()

			Expect(price).To(BeNumerically(">=", api.MinTotalPrice))
			Expect(price).To(BeNumerically("<", api.MaxTotalPrice))

			cents := price * 100
			Expect(math.Abs(cents - math.Round(cents))).To(BeNumerically("<", 1e-6), "price %v has more than two decimals", price)
		}
	})

	It("should produce stays that started in the past and end in the future", func() {
		generator := api.NewGenerator(0, clock)

		for range iterations {
			dates := generator.BookingDates()

			checkin, err := dates.Checkin.Time()
			Expect(err).NotTo(HaveOccurred())

			checkout, err := dates.Checkout.Time()
			Expect(err).NotTo(HaveOccurred())

			Expect(checkin.Before(now)).To(BeTrue(), "checkin %s is not before %s", dates.Checkin, now)
			Expect(checkout.After(now)).To(BeTrue(), "checkout %s is not after %s", dates.Checkout, now)
			Expect(dates.Checkin.String()).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}$`))
		}
	})

	It("should build schema valid bookings for the user", func() {
		generator := api.NewGenerator(0, clock)
		fixture := api.NewSuiteFixture(generator)

		Expect(fixture.User.Username).NotTo(BeEmpty())
		Expect(fixture.User.Email).To(ContainSubstring("@"))
		Expect(fixture.User.Password).To(HaveLen(16))
		Expect(fixture.Booking.FirstName).To(Equal(fixture.User.FirstName))
		Expect(fixture.Booking.LastName).To(Equal(fixture.User.LastName))
		Expect(fixture.Booking.AdditionalNeeds).To(BeEmpty())

		Expect(openapi.ValidateJSON(openapi.SchemaBooking, mustJSON(fixture.Booking))).To(Succeed())
	})

	It("should be reproducible from a seed", func() {
		a := api.NewSuiteFixture(api.NewGenerator(42, clock))
		b := api.NewSuiteFixture(api.NewGenerator(42, clock))

		Expect(a).To(Equal(b))
	})

	It("should produce digit strings of the requested length", func() {
		Expect(api.NewGenerator(0, clock).Digits(8)).To(MatchRegexp(`^\d{8}$`))
	})
})
