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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

// CreateAuthToken obtains a token with the configured admin credentials.
func CreateAuthToken(client *APIClient, ctx context.Context, config *TestConfig) string {
	token, _, err := client.CreateAuthToken(ctx, config.Credentials())
	Expect(err).NotTo(HaveOccurred(), "creating auth token")
	Expect(token).NotTo(BeEmpty())

	return token
}

// CreateBookingWithCleanup creates a booking and schedules its deletion.
func CreateBookingWithCleanup(client *APIClient, ctx context.Context, config *TestConfig, booking openapi.Booking) *openapi.CreatedBooking {
	created, _, err := client.CreateBooking(ctx, booking)
	Expect(err).NotTo(HaveOccurred(), "creating booking fixture")

	GinkgoWriter.Printf("Created booking with ID: %d\n", created.BookingID)

	ScheduleBookingCleanup(client, ctx, config, created.BookingID)

	return created
}

// ScheduleBookingCleanup deletes the booking once the spec is done, whether
// it passed or failed. A booking the spec already deleted is not an error.
func ScheduleBookingCleanup(client *APIClient, ctx context.Context, config *TestConfig, bookingID int) {
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up booking: %d\n", bookingID)

		token, _, err := client.CreateAuthToken(ctx, config.Credentials())
		if err != nil {
			GinkgoWriter.Printf("Warning: Failed to get token to delete booking %d: %v\n", bookingID, err)
			return
		}

		resp, err := client.DeleteBooking(ctx, bookingID, token)
		if err == nil {
			GinkgoWriter.Printf("Successfully deleted booking: %d\n", bookingID)
			return
		}

		// The service answers 405 for unknown ids.
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed) {
			return
		}

		GinkgoWriter.Printf("Warning: Failed to delete booking %d: %v\n", bookingID, err)
	})
}

// VerifyBookingEcho verifies the service stored exactly what was sent.
func VerifyBookingEcho(actual *openapi.Booking, expected openapi.Booking) {
	Expect(actual).NotTo(BeNil())
	Expect(actual.FirstName).To(Equal(expected.FirstName))
	Expect(actual.LastName).To(Equal(expected.LastName))
	Expect(actual.TotalPrice).To(BeNumerically("~", expected.TotalPrice, 0.001))
	Expect(actual.DepositPaid).To(Equal(expected.DepositPaid))
	Expect(actual.BookingDates).To(Equal(expected.BookingDates))
	Expect(actual.AdditionalNeeds).To(Equal(expected.AdditionalNeeds))
}

// VerifyBookingIDsPresence verifies every expected ID is in the listing.
func VerifyBookingIDsPresence(ids []openapi.BookingID, expected ...int) {
	listed := make([]int, len(ids))

	for i, id := range ids {
		listed[i] = id.BookingID
	}

	missing := set.New[int](expected...).Difference(set.New[int](listed...))

	Expect(slices.Sorted(missing.All())).To(BeEmpty(), "Expected booking IDs to be present in the list")
}
