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

package fakebooker

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

var ErrNotFound = errors.New("booking not found")

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	FirstName  string
	LastName   string
	Checkin    openapi.Date
	Checkout   openapi.Date
	TotalPrice *float64
}

func (f *Filter) matches(b *openapi.Booking) bool {
	if f.FirstName != "" && !strings.EqualFold(f.FirstName, b.FirstName) {
		return false
	}

	if f.LastName != "" && !strings.EqualFold(f.LastName, b.LastName) {
		return false
	}

	// Dates share one layout so lexical order is calendar order.
	if f.Checkin != "" && b.BookingDates.Checkin < f.Checkin {
		return false
	}

	if f.Checkout != "" && b.BookingDates.Checkout > f.Checkout {
		return false
	}

	if f.TotalPrice != nil && math.Round(*f.TotalPrice*100) != math.Round(b.TotalPrice*100) {
		return false
	}

	return true
}

// Store is an in-memory booking database.
type Store struct {
	lock     sync.RWMutex
	bookings map[int]openapi.Booking
	tokens   map[string]struct{}
	nextID   int
}

func NewStore() *Store {
	return &Store{
		bookings: map[int]openapi.Booking{},
		tokens:   map[string]struct{}{},
		nextID:   1,
	}
}

// Create stores a booking and returns its ID.
func (s *Store) Create(booking openapi.Booking) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	id := s.nextID
	s.nextID++

	s.bookings[id] = booking

	return id
}

func (s *Store) Get(id int) (openapi.Booking, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return openapi.Booking{}, ErrNotFound
	}

	return booking, nil
}

// List returns the IDs of matching bookings in ascending order.
func (s *Store) List(filter *Filter) []int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ids := slices.Sorted(maps.Keys(s.bookings))

	return slices.DeleteFunc(ids, func(id int) bool {
		booking := s.bookings[id]
		return !filter.matches(&booking)
	})
}

func (s *Store) Update(id int, booking openapi.Booking) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}

	s.bookings[id] = booking

	return nil
}

func (s *Store) Patch(id int, patch *openapi.BookingPatch) (openapi.Booking, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return openapi.Booking{}, ErrNotFound
	}

	booking = patch.Apply(booking)
	s.bookings[id] = booking

	return booking, nil
}

func (s *Store) Delete(id int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}

	delete(s.bookings, id)

	return nil
}

// IssueToken mints a token in the same shape as the real service, 15 hex
// characters.
func (s *Store) IssueToken() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	token := hex.EncodeToString(bytes)[:15]

	s.lock.Lock()
	defer s.lock.Unlock()

	s.tokens[token] = struct{}{}

	return token
}

func (s *Store) ValidToken(token string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.tokens[token]

	return ok
}
