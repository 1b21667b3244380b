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

package viewstate

import (
	"context"
	"sync"

	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/validation"
)

// Register drives the registration screen. Registration uses the strong
// password rule; login only checks presence.
type Register struct {
	auth *repository.Auth

	mu            sync.Mutex
	nameError     string
	emailError    string
	passwordError string
	formError     string
	loading       bool
	success       bool
}

func NewRegister(auth *repository.Auth) *Register {
	return &Register{auth: auth}
}

func (r *Register) Submit(ctx context.Context, firstName, lastName, email, password string) {
	r.mu.Lock()
	r.nameError = ""
	r.emailError = ""
	r.passwordError = ""
	r.formError = ""
	r.success = false

	valid := true
	if !validation.Name(firstName) || !validation.Name(lastName) {
		r.nameError = "Invalid names (min 3 letters, no symbols)"
		valid = false
	}
	if !validation.Email(email) {
		r.emailError = "Invalid email format"
		valid = false
	}
	if !validation.StrongPassword(password) {
		r.passwordError = "At least 6 characters, 1 uppercase, 1 digit"
		valid = false
	}
	if !valid {
		r.mu.Unlock()
		return
	}
	r.loading = true
	r.mu.Unlock()

	err := r.auth.Register(ctx, email, password, firstName, lastName)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.formError = err.Error()
		return
	}
	r.success = true
}

func (r *Register) Success() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.success
}

func (r *Register) NameError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nameError
}

func (r *Register) EmailError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emailError
}

func (r *Register) PasswordError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passwordError
}

func (r *Register) FormError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.formError
}

func (r *Register) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}
