// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is a failed gateway call. Callers classify by StatusCode and
// Reason; the human-readable Message is for display and logs only and must
// never be parsed.
type Error struct {
	// StatusCode is the HTTP status, or 0 for a transport-level failure.
	StatusCode int
	// Reason is the machine-readable reason from the server error body,
	// when one was present.
	Reason string
	// Message is a best-effort human-readable description.
	Message string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// gateway error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// errorBody is the shape gateway services use for error responses. Some
// send "error", some "message".
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Message: fmt.Sprintf("request failed (status %d)", status)}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Error != "":
			e.Reason = eb.Error
			e.Message = eb.Error
		case eb.Message != "":
			e.Reason = eb.Message
			e.Message = eb.Message
		}
	}
	return e
}

func transportError(err error) *Error {
	return &Error{Message: err.Error()}
}
