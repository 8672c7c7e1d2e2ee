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

// Package openapi holds the wire types of the booking service and the
// schemas they are checked against.
package openapi

// User is the guest a booking is made for. Only the names are ever sent
// to the service, the rest describes the persona.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// BookingDates is the stay.
type BookingDates struct {
	Checkin  Date `json:"checkin"`
	Checkout Date `json:"checkout"`
}

// Booking is both the create/update request and the stored record.
type Booking struct {
	FirstName       string       `json:"firstname"`
	LastName        string       `json:"lastname"`
	TotalPrice      float64      `json:"totalprice"`
	DepositPaid     bool         `json:"depositpaid"`
	BookingDates    BookingDates `json:"bookingdates"`
	AdditionalNeeds string       `json:"additionalneeds"`
}

// BookingPatch is a partial update, nil fields are left untouched.
type BookingPatch struct {
	FirstName       *string       `json:"firstname,omitempty"`
	LastName        *string       `json:"lastname,omitempty"`
	TotalPrice      *float64      `json:"totalprice,omitempty"`
	DepositPaid     *bool         `json:"depositpaid,omitempty"`
	BookingDates    *BookingDates `json:"bookingdates,omitempty"`
	AdditionalNeeds *string       `json:"additionalneeds,omitempty"`
}

// Apply returns a copy of the booking with the patch applied.
func (p *BookingPatch) Apply(b Booking) Booking {
	if p.FirstName != nil {
		b.FirstName = *p.FirstName
	}

	if p.LastName != nil {
		b.LastName = *p.LastName
	}

	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}

	if p.DepositPaid != nil {
		b.DepositPaid = *p.DepositPaid
	}

	if p.BookingDates != nil {
		b.BookingDates = *p.BookingDates
	}

	if p.AdditionalNeeds != nil {
		b.AdditionalNeeds = *p.AdditionalNeeds
	}

	return b
}

// CreatedBooking is returned by POST /booking.
type CreatedBooking struct {
	BookingID int     `json:"bookingid"`
	Booking   Booking `json:"booking"`
}

// BookingID is an element of the GET /booking listing.
type BookingID struct {
	BookingID int `json:"bookingid"`
}

// AuthRequest is the POST /auth body.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries a token on success and a reason otherwise. The
// service answers 200 in both cases.
type AuthResponse struct {
	Token  string `json:"token,omitempty"`
	Reason string `json:"reason,omitempty"`
}
