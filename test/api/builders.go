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

package api

import (
	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

// GenerateTestID returns a short unique tag for data created by a spec.
func GenerateTestID() string {
	return "test-" + randomHex(4)
}

// BookingPayloadBuilder builds booking payloads for testing.
type BookingPayloadBuilder struct {
	booking openapi.Booking
}

// NewBookingPayload starts from a random valid booking for a random user.
func NewBookingPayload(g *Generator) *BookingPayloadBuilder {
	return &BookingPayloadBuilder{
		booking: g.Booking(g.User()),
	}
}

// NewBookingPayloadFrom starts from an existing booking.
func NewBookingPayloadFrom(booking openapi.Booking) *BookingPayloadBuilder {
	return &BookingPayloadBuilder{
		booking: booking,
	}
}

func (b *BookingPayloadBuilder) WithFirstName(name string) *BookingPayloadBuilder {
	b.booking.FirstName = name
	return b
}

func (b *BookingPayloadBuilder) WithLastName(name string) *BookingPayloadBuilder {
	b.booking.LastName = name
	return b
}

func (b *BookingPayloadBuilder) WithTotalPrice(price float64) *BookingPayloadBuilder {
	b.booking.TotalPrice = price
	return b
}

func (b *BookingPayloadBuilder) WithDepositPaid(paid bool) *BookingPayloadBuilder {
	b.booking.DepositPaid = paid
	return b
}

// WithDates sets the stay, dates are yyyy-mm-dd.
func (b *BookingPayloadBuilder) WithDates(checkin, checkout openapi.Date) *BookingPayloadBuilder {
	b.booking.BookingDates = openapi.BookingDates{
		Checkin:  checkin,
		Checkout: checkout,
	}

	return b
}

func (b *BookingPayloadBuilder) WithAdditionalNeeds(needs string) *BookingPayloadBuilder {
	b.booking.AdditionalNeeds = needs
	return b
}

// Build returns the completed booking payload.
func (b *BookingPayloadBuilder) Build() openapi.Booking {
	return b.booking
}
