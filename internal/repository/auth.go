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

package repository

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

// Auth performs login and registration against the auth service and owns
// the resulting session pair.
type Auth struct {
	client   *api.Client
	sessions session.Store
}

func NewAuth(client *api.Client, sessions session.Store) *Auth {
	return &Auth{client: client, sessions: sessions}
}

// Login authenticates and, on success, persists token and role together in
// the session store.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return errors.Wrap(err, "invalid credentials")
	}
	if err := a.sessions.Save(resp.Token, resp.Role); err != nil {
		return errors.Wrap(err, "could not persist session")
	}
	return nil
}

func (a *Auth) Register(ctx context.Context, email, password, firstName, lastName string) error {
	err := a.client.Register(ctx, api.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return errors.Wrap(err, "registration failed")
	}
	return nil
}

// Logout clears the persisted session pair.
func (a *Auth) Logout() error {
	return a.sessions.Clear()
}
