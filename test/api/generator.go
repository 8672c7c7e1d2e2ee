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

package api

import (
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

const (
	MinTotalPrice = 50
	MaxTotalPrice = 100000

	day = 24 * time.Hour

	// stayWindow bounds how far either side of now the stay may start or end.
	stayWindow = 30 * day
)

// Generator produces random, schema valid test data.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator creates a generator, a zero seed picks a random one. A nil
// clock defaults to time.Now.
func NewGenerator(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}

	return &Generator{
		faker: gofakeit.New(seed),
		now:   now,
	}
}

func (g *Generator) User() openapi.User {
	return openapi.User{
		Username:  g.faker.Username(),
		FirstName: g.faker.FirstName(),
		LastName:  g.faker.LastName(),
		Email:     g.faker.Email(),
		Password:  g.faker.Password(true, true, true, false, false, 16),
		Phone:     g.faker.Phone(),
	}
}

// BookingDates returns a stay that started at least a day ago and ends at
// least a day from now, so checkin < now <= checkout holds at date
// granularity whatever the time of day.
func (g *Generator) BookingDates() openapi.BookingDates {
	now := g.now().UTC()

	checkin := g.faker.DateRange(now.Add(-stayWindow), now.Add(-day))
	checkout := g.faker.DateRange(now.Add(day), now.Add(stayWindow))

	return openapi.BookingDates{
		Checkin:  openapi.NewDate(checkin),
		Checkout: openapi.NewDate(checkout),
	}
}

// TotalPrice returns a price in [MinTotalPrice, MaxTotalPrice) rounded to
// whole cents.
func (g *Generator) TotalPrice() float64 {
	price := math.Round(g.faker.Price(MinTotalPrice, MaxTotalPrice)*100) / 100

	return min(max(price, MinTotalPrice), MaxTotalPrice-0.01)
}

// Booking returns a booking for the user with no additional needs.
func (g *Generator) Booking(user openapi.User) openapi.Booking {
	return openapi.Booking{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		TotalPrice:   g.TotalPrice(),
		DepositPaid:  g.faker.Bool(),
		BookingDates: g.BookingDates(),
	}
}

func (g *Generator) FirstName() string {
	return g.faker.FirstName()
}

// Digits returns a random string of n decimal digits.
func (g *Generator) Digits(n uint) string {
	return g.faker.DigitN(n)
}

// SuiteFixture is the user and booking shared, read only, by every spec
// in a run.
type SuiteFixture struct {
	User    openapi.User
	Booking openapi.Booking
}

func NewSuiteFixture(g *Generator) *SuiteFixture {
	user := g.User()

	return &SuiteFixture{
		User:    user,
		Booking: g.Booking(user),
	}
}
