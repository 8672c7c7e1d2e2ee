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

package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema names defined under components/schemas.
const (
	SchemaAuthResponse          = "AuthResponse"
	SchemaBooking               = "Booking"
	SchemaBookingPatch          = "BookingPatch"
	SchemaBookingIDList         = "BookingIdList"
	SchemaCreateBookingResponse = "CreateBookingResponse"
)

var ErrUnknownSchema = errors.New("unknown schema")

//go:embed server.spec.yaml
var spec []byte

//nolint:gochecknoglobals
var loadSpec = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading openapi spec: %w", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validating openapi spec: %w", err)
	}

	return doc, nil
})

// Spec returns the parsed and validated booking service description.
func Spec() (*openapi3.T, error) {
	return loadSpec()
}

// Schema looks up a named component schema.
func Schema(name string) (*openapi3.Schema, error) {
	doc, err := Spec()
	if err != nil {
		return nil, err
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	return ref.Value, nil
}

// ValidateJSON checks a raw JSON document against a named component schema.
func ValidateJSON(name string, data []byte) error {
	schema, err := Schema(name)
	if err != nil {
		return err
	}

	var value any

	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding %s document: %w", name, err)
	}

	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%s schema mismatch: %w", name, err)
	}

	return nil
}
