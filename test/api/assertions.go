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
package api

import (
	"time"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"

	"github.com/nscaledev/restful-booker-tests/pkg/openapi"
)

// HaveStatus succeeds when the response carries the status code.
func HaveStatus(code int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return resp != nil && resp.StatusCode == code, nil
	}).WithTemplate("Expected status {{.To}} be {{.Data}}, {{if .Actual}}got {{.Actual.StatusCode}} with body:\n{{printf \"%s\" .Actual.Body}}{{else}}got no response{{end}}", code)
}

// HaveJSONContentType succeeds for application/json, with or without charset.
func HaveJSONContentType() types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return resp != nil && resp.MediaType() == "application/json", nil
	}).WithTemplate("Expected Content-Type {{.To}} be application/json, {{if .Actual}}got {{printf \"%q\" (.Actual.Header.Get \"Content-Type\")}}{{else}}got no response{{end}}")
}

// MatchSchema validates the body against a named component schema.
func MatchSchema(name string) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		if resp == nil {
			return false, nil
		}

		if err := openapi.ValidateJSON(name, resp.Body); err != nil {
			return false, err
		}

		return true, nil
	}).WithTemplate("Expected body {{.To}} match schema {{.Data}}{{if .Actual}}:\n{{printf \"%s\" .Actual.Body}}{{else}}, got no response{{end}}", name)
}

// RespondWithin bounds the measured round trip time.
func RespondWithin(limit time.Duration) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return resp != nil && resp.Duration < limit, nil
	}).WithTemplate("Expected response time {{.To}} be within {{.Data}}, {{if .Actual}}took {{.Actual.Duration}}{{else}}got no response{{end}}", limit)
}

// VerifyCreateBookingContract checks the full create booking response
// contract and that the booking was echoed back unchanged.
func VerifyCreateBookingContract(resp *Response, created *openapi.CreatedBooking, expected openapi.Booking, limit time.Duration) {
	Expect(resp).To(HaveStatus(200))
	Expect(resp).To(HaveJSONContentType())
	Expect(resp).To(MatchSchema(openapi.SchemaCreateBookingResponse))
	Expect(resp).To(RespondWithin(limit))

	Expect(created).NotTo(BeNil())
	Expect(created.BookingID).To(BeNumerically(">", 0))
	VerifyBookingEcho(&created.Booking, expected)
}
