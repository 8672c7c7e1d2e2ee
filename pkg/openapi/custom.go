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
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only date format the booking service accepts.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date: must be formatted as yyyy-MM-dd")

// Date is a calendar day as exchanged with the booking service.
type Date string

// NewDate formats the UTC calendar day of t.
func NewDate(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

func (d *Date) UnmarshalText(text []byte) error {
	if _, err := time.Parse(DateLayout, string(text)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(text))
	}

	*d = Date(text)

	return nil
}

// Time returns midnight UTC of the day.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}

	return t, nil
}

func (d Date) String() string {
	return string(d)
}
