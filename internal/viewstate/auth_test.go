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
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

type authGateway struct {
	srv    *httptest.Server
	calls  int64
	status int
	body   string
}

func newAuthGateway(t *testing.T) *authGateway {
	t.Helper()
	g := &authGateway{status: http.StatusOK, body: `{"token":"tok-1","role":"CLIENTE","userId":1}`}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&g.calls, 1)
		w.WriteHeader(g.status)
		w.Write([]byte(g.body))
	}))
	t.Cleanup(g.srv.Close)
	return g
}

func newAuthDeps(t *testing.T, gatewayURL string) (*repository.Auth, session.Store) {
	t.Helper()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	return repository.NewAuth(api.New(gatewayURL, store), store), store
}

func TestLoginMalformedEmailSkipsNetwork(t *testing.T) {
	g := newAuthGateway(t)
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewLogin(auth)

	ok := holder.Submit(context.Background(), "not-an-email", "Abc123")

	assert.False(t, ok)
	assert.Equal(t, "Invalid email format (e.g. user@mail.com)", holder.EmailError())
	assert.Zero(t, atomic.LoadInt64(&g.calls))
}

func TestLoginEmptyPasswordSkipsNetwork(t *testing.T) {
	g := newAuthGateway(t)
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewLogin(auth)

	assert.False(t, holder.Submit(context.Background(), "user@mail.com", ""))
	assert.Equal(t, "Enter your password", holder.PasswordError())
	assert.Zero(t, atomic.LoadInt64(&g.calls))
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	g := newAuthGateway(t)
	auth, store := newAuthDeps(t, g.srv.URL)
	holder := NewLogin(auth)

	ok := holder.Submit(context.Background(), "user@mail.com", "Abc123")

	require.True(t, ok)
	s := store.Session()
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, "CLIENTE", s.Role)
}

func TestLoginRejectedCredentials(t *testing.T) {
	g := newAuthGateway(t)
	g.status = http.StatusUnauthorized
	g.body = `{"error":"bad credentials"}`
	auth, store := newAuthDeps(t, g.srv.URL)
	holder := NewLogin(auth)

	assert.False(t, holder.Submit(context.Background(), "user@mail.com", "Abc123"))
	assert.Equal(t, "Invalid credentials", holder.FormError())
	assert.False(t, store.Session().IsLoggedIn())
}

func TestRegisterWeakPasswordSkipsNetwork(t *testing.T) {
	g := newAuthGateway(t)
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewRegister(auth)

	holder.Submit(context.Background(), "Maria", "Perez", "user@mail.com", "abc123")

	assert.False(t, holder.Success())
	assert.Equal(t, "At least 6 characters, 1 uppercase, 1 digit", holder.PasswordError())
	assert.Zero(t, atomic.LoadInt64(&g.calls))
}

func TestRegisterShortNameSkipsNetwork(t *testing.T) {
	g := newAuthGateway(t)
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewRegister(auth)

	holder.Submit(context.Background(), "Al", "Perez", "user@mail.com", "Abc123")

	assert.False(t, holder.Success())
	assert.Equal(t, "Invalid names (min 3 letters, no symbols)", holder.NameError())
	assert.Zero(t, atomic.LoadInt64(&g.calls))
}

func TestRegisterSuccess(t *testing.T) {
	g := newAuthGateway(t)
	g.status = http.StatusCreated
	g.body = `{}`
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewRegister(auth)

	holder.Submit(context.Background(), "Maria", "Perez", "user@mail.com", "Abc123")

	assert.True(t, holder.Success())
	assert.Empty(t, holder.FormError())
}

func TestRegisterSuccessNotStickyAcrossSubmissions(t *testing.T) {
	g := newAuthGateway(t)
	g.status = http.StatusCreated
	g.body = `{}`
	auth, _ := newAuthDeps(t, g.srv.URL)
	holder := NewRegister(auth)

	holder.Submit(context.Background(), "Maria", "Perez", "user@mail.com", "Abc123")
	require.True(t, holder.Success())

	// a rejected follow-up submission must not keep reporting success
	holder.Submit(context.Background(), "Al", "Perez", "other@mail.com", "Abc123")
	assert.False(t, holder.Success())
	assert.Equal(t, "Invalid names (min 3 letters, no symbols)", holder.NameError())
}
