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

// Login drives the login screen. Field-level validation runs before any
// network call; a malformed email never reaches the gateway.
type Login struct {
	auth *repository.Auth

	mu            sync.Mutex
	emailError    string
	passwordError string
	formError     string
	loading       bool
}

func NewLogin(auth *repository.Auth) *Login {
	return &Login{auth: auth}
}

// Submit validates and attempts the login. It reports whether the user is
// now authenticated; on false the field or form errors carry the reason.
func (l *Login) Submit(ctx context.Context, email, password string) bool {
	l.mu.Lock()
	l.emailError = ""
	l.passwordError = ""
	l.formError = ""

	valid := true
	if !validation.Email(email) {
		l.emailError = "Invalid email format (e.g. user@mail.com)"
		valid = false
	}
	if password == "" {
		l.passwordError = "Enter your password"
		valid = false
	}
	if !valid {
		l.mu.Unlock()
		return false
	}
	l.loading = true
	l.mu.Unlock()

	err := l.auth.Login(ctx, email, password)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.formError = "Invalid credentials"
		return false
	}
	return true
}

func (l *Login) EmailError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.emailError
}

func (l *Login) PasswordError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.passwordError
}

func (l *Login) FormError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formError
}

func (l *Login) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}
