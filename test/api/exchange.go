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
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/onsi/ginkgo/v2"
)

// redactedHeaders never appear verbatim in logs.
//
//nolint:gochecknoglobals
var redactedHeaders = []string{"Authorization", "Cookie"}

// Exchange is one request/response pair as seen by the client.
type Exchange struct {
	Method         string
	URL            string
	RequestHeader  http.Header
	RequestBody    []byte
	StatusCode     int
	ResponseHeader http.Header
	ResponseBody   []byte
	Duration       time.Duration
	TraceParent    string
	Err            error

	// ExpectedStatus is zero when the caller accepts any status.
	ExpectedStatus int
}

func redact(header http.Header) http.Header {
	out := header.Clone()

	for _, name := range redactedHeaders {
		if out.Get(name) != "" {
			out.Set(name, "[REDACTED]")
		}
	}

	return out
}

func writeHeader(w io.Writer, prefix string, header http.Header) {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(w, "%s%s: %s\n", prefix, name, strings.Join(header[name], ", "))
	}
}

// Format renders the exchange in a curl -v like layout.
func (e *Exchange) Format(w io.Writer) {
	fmt.Fprintf(w, "> %s %s\n", e.Method, e.URL)
	writeHeader(w, "> ", e.RequestHeader)

	if len(e.RequestBody) > 0 {
		fmt.Fprintf(w, "> \n> %s\n", e.RequestBody)
	}

	if e.Err != nil {
		fmt.Fprintf(w, "! error=%v duration=%s trace ID=%s\n", e.Err, e.Duration, extractTraceID(e.TraceParent))
		return
	}

	fmt.Fprintf(w, "< %d %s (duration=%s trace ID=%s)\n", e.StatusCode, http.StatusText(e.StatusCode), e.Duration, extractTraceID(e.TraceParent))

	if e.ExpectedStatus > 0 && e.ExpectedStatus != e.StatusCode {
		fmt.Fprintf(w, "! expected status %d\n", e.ExpectedStatus)
	}

	writeHeader(w, "< ", e.ResponseHeader)

	if len(e.ResponseBody) > 0 {
		fmt.Fprintf(w, "< \n< %s\n", e.ResponseBody)
	}
}

// ExchangeLog keeps every exchange a client performs so they can be
// reported if, and only if, the spec fails.
type ExchangeLog struct {
	lock      sync.Mutex
	exchanges []Exchange
}

func NewExchangeLog() *ExchangeLog {
	return &ExchangeLog{}
}

func (l *ExchangeLog) Record(exchange Exchange) {
	exchange.RequestHeader = redact(exchange.RequestHeader)

	l.lock.Lock()
	defer l.lock.Unlock()

	l.exchanges = append(l.exchanges, exchange)
}

// Exchanges returns a copy of everything recorded so far.
func (l *ExchangeLog) Exchanges() []Exchange {
	l.lock.Lock()
	defer l.lock.Unlock()

	return slices.Clone(l.exchanges)
}

func (l *ExchangeLog) Reset() {
	l.lock.Lock()
	defer l.lock.Unlock()

	l.exchanges = nil
}

func (l *ExchangeLog) String() string {
	var b strings.Builder

	for i, exchange := range l.Exchanges() {
		fmt.Fprintf(&b, "--- exchange %d ---\n", i+1)
		exchange.Format(&b)
	}

	return b.String()
}

// ReportExchanges writes the log to w when failed is set and returns what
// was written. Nothing is written for a passing spec.
func ReportExchanges(w io.Writer, log *ExchangeLog, failed bool) string {
	if !failed {
		return ""
	}

	dump := log.String()
	if dump == "" {
		return ""
	}

	fmt.Fprintf(w, "HTTP exchanges for failed spec:\n%s", dump)

	return dump
}

// LogExchangesOnFailure dumps the client's exchanges to the spec output and
// report once the spec has finished, but only when it failed.
func LogExchangesOnFailure(client *APIClient) {
	ginkgo.DeferCleanup(func() {
		dump := ReportExchanges(ginkgo.GinkgoWriter, client.Exchanges(), ginkgo.CurrentSpecReport().Failed())
		if dump == "" {
			return
		}

		ginkgo.AddReportEntry("HTTP exchanges", dump, ginkgo.ReportEntryVisibilityFailureOrVerbose)
	})
}
