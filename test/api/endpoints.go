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
	"fmt"
	"net/url"
	"strconv"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Auth endpoints.
func (e *Endpoints) CreateToken() string {
	return "/auth"
}

// Booking endpoints.
func (e *Endpoints) ListBookings() string {
	return "/booking"
}

func (e *Endpoints) CreateBooking() string {
	return "/booking"
}

func (e *Endpoints) Booking(bookingID int) string {
	return fmt.Sprintf("/booking/%d", bookingID)
}

// Health endpoints.
func (e *Endpoints) HealthCheck() string {
	return "/ping"
}

// BookingFilter narrows GET /booking. Empty fields are not sent.
type BookingFilter struct {
	FirstName  string
	LastName   string
	Checkin    openapi.Date
	Checkout   openapi.Date
	TotalPrice *float64
}

// Query encodes the filter with the parameter names the service documents.
func (f *BookingFilter) Query() url.Values {
	query := url.Values{}

	if f == nil {
		return query
	}

	if f.FirstName != "" {
		query.Set("firstname", f.FirstName)
	}

	if f.LastName != "" {
		query.Set("lastname", f.LastName)
	}

	if f.Checkin != "" {
		query.Set("checkin", f.Checkin.String())
	}

	if f.Checkout != "" {
		query.Set("checkout", f.Checkout.String())
	}

	if f.TotalPrice != nil {
		query.Set("totalprice", strconv.FormatFloat(*f.TotalPrice, 'f', -1, 64))
	}

	return query
}
