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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

const ordersPayload = `[
	{"id":"o1","status":"PENDIENTE","precioTotal":100},
	{"id":"o2","status":"ENVIADO","precioTotal":200},
	{"id":"o3","status":"ENTREGADO","precioTotal":300}
]`

func newOrdersRepo(t *testing.T, handler http.HandlerFunc) *repository.Orders {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	return repository.NewOrders(api.New(srv.URL, store))
}

func TestClientOrdersNewestFirst(t *testing.T) {
	repo := newOrdersRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pedidos/mis-pedidos", r.URL.Path)
		w.Write([]byte(ordersPayload))
	})
	holder := NewClientOrders(repo)

	holder.Load(context.Background())

	orders := holder.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o1", orders[2].ID)
}

func TestOrderSearchMatchesIDOrStatus(t *testing.T) {
	repo := newOrdersRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ordersPayload))
	})
	holder := NewClientOrders(repo)
	holder.Load(context.Background())

	holder.SetSearchQuery("enviado")
	orders := holder.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "o2", orders[0].ID)

	holder.SetSearchQuery("o1")
	orders = holder.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)

	holder.SetSearchQuery("")
	assert.Len(t, holder.Orders(), 3)
}

func TestAdminUpdateStatusUppercasesAndReloads(t *testing.T) {
	var gotStatus string
	loads := 0
	repo := newOrdersRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut:
			gotStatus = r.URL.Query().Get("status")
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/pedidos/todos":
			loads++
			w.Write([]byte(ordersPayload))
		default:
			http.NotFound(w, r)
		}
	})
	holder := NewAdminOrders(repo)

	holder.UpdateStatus(context.Background(), api.Order{ID: "o1"}, "enviado")

	assert.Equal(t, "ENVIADO", gotStatus)
	assert.Equal(t, "Order updated to ENVIADO", holder.SuccessMessage())
	assert.Equal(t, 1, loads, "a successful transition reloads the list")
	assert.Len(t, holder.Orders(), 3)
}

func TestAdminUpdateStatusFailureKeepsList(t *testing.T) {
	repo := newOrdersRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"invalid transition"}`))
			return
		}
		w.Write([]byte(ordersPayload))
	})
	holder := NewAdminOrders(repo)
	holder.Load(context.Background())

	holder.UpdateStatus(context.Background(), api.Order{ID: "o1"}, "ENTREGADO")

	assert.Empty(t, holder.SuccessMessage())
	assert.Contains(t, holder.ErrorMessage(), "Could not update")
	assert.Len(t, holder.Orders(), 3)
}
