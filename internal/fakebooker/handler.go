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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

type Handler struct {
	// store holds all bookings and issued tokens.
	store *Store

	// options allows behaviour to be defined on the CLI.
	options *Options

	logger logr.Logger
}

func NewHandler(store *Store, options *Options, logger logr.Logger) *Handler {
	return &Handler{
		store:   store,
		options: options,
		logger:  logger,
	}
}

// Routes mounts the restful-booker compatible routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/ping", h.Ping)
	r.Post("/auth", h.CreateToken)

	r.Route("/booking", func(r chi.Router) {
		// Bodies must be JSON, requests without one are let through.
		r.Use(chimw.AllowContentType("application/json"))

		r.Get("/", h.ListBookings)
		r.Post("/", h.CreateBooking)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetBooking)

			r.Group(func(r chi.Router) {
				r.Use(h.requireToken)
				r.Put("/", h.UpdateBooking)
				r.Patch("/", h.PartialUpdateBooking)
				r.Delete("/", h.DeleteBooking)
			})
		})
	})
}

// text mirrors the service's plain text status responses e.g. "Created".
func text(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func bookingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// readValidated reads the request body and checks it against a schema
// before decoding into v.
func readValidated(r *http.Request, schema string, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if err := openapi.ValidateJSON(schema, body); err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}

// requireToken admits a request carrying a known token cookie or the admin
// credentials as Basic auth.
func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("token"); err == nil && h.store.ValidToken(cookie.Value) {
			next.ServeHTTP(w, r)
			return
		}

		if username, password, ok := r.BasicAuth(); ok && username == h.options.AdminUsername && password == h.options.AdminPassword {
			next.ServeHTTP(w, r)
			return
		}

		text(w, http.StatusForbidden)
	})
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	text(w, http.StatusCreated)
}

func (h *Handler) CreateToken(w http.ResponseWriter, r *http.Request) {
	request := &openapi.AuthRequest{}

	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		text(w, http.StatusBadRequest)
		return
	}

	if request.Username != h.options.AdminUsername || request.Password != h.options.AdminPassword {
		writeJSON(w, http.StatusOK, &openapi.AuthResponse{Reason: "Bad credentials"})
		return
	}

	writeJSON(w, http.StatusOK, &openapi.AuthResponse{Token: h.store.IssueToken()})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &Filter{
		FirstName: query.Get("firstname"),
		LastName:  query.Get("lastname"),
		Checkin:   openapi.Date(query.Get("checkin")),
		Checkout:  openapi.Date(query.Get("checkout")),
	}

	// The public service is lenient about casing of the name filters.
	if filter.FirstName == "" {
		filter.FirstName = query.Get("firstName")
	}

	if filter.LastName == "" {
		filter.LastName = query.Get("lastName")
	}

	if raw := query.Get("totalprice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			text(w, http.StatusBadRequest)
			return
		}

		filter.TotalPrice = &price
	}

	ids := h.store.List(filter)

	result := make([]openapi.BookingID, len(ids))

	for i, id := range ids {
		result[i] = openapi.BookingID{BookingID: id}
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	booking := openapi.Booking{}

	if err := readValidated(r, openapi.SchemaBooking, &booking); err != nil {
		h.logger.V(1).Info("rejected booking", "error", err.Error())
		text(w, http.StatusBadRequest)

		return
	}

	id := h.store.Create(booking)

	h.logger.Info("booking created", "id", id)

	writeJSON(w, http.StatusOK, &openapi.CreatedBooking{
		BookingID: id,
		Booking:   booking,
	})
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		text(w, http.StatusNotFound)
		return
	}

	booking, err := h.store.Get(id)
	if err != nil {
		text(w, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, &booking)
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		text(w, http.StatusMethodNotAllowed)
		return
	}

	booking := openapi.Booking{}

	if err := readValidated(r, openapi.SchemaBooking, &booking); err != nil {
		text(w, http.StatusBadRequest)
		return
	}

	if err := h.store.Update(id, booking); err != nil {
		text(w, http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, &booking)
}

func (h *Handler) PartialUpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		text(w, http.StatusMethodNotAllowed)
		return
	}

	patch := &openapi.BookingPatch{}

	if err := readValidated(r, openapi.SchemaBookingPatch, patch); err != nil {
		text(w, http.StatusBadRequest)
		return
	}

	booking, err := h.store.Patch(id, patch)
	if err != nil {
		text(w, http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, &booking)
}

// DeleteBooking answers 201 on success and, like the public service, 405
// for bookings that do not exist.
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		text(w, http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Delete(id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Error(err, "delete failed", "id", id)
		}

		text(w, http.StatusMethodNotAllowed)

		return
	}

	h.logger.Info("booking deleted", "id", id)

	text(w, http.StatusCreated)
}
