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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/navigation"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

const catalogPayload = `[
	{"id":"p1","nombre":"Camiseta Roja","precio":19990,"stock":4,"categorias":["Deporte","Ropa"]},
	{"id":"p2","nombre":"Pelota","precio":9990,"stock":10,"categorias":["Deporte"]},
	{"id":"p3","nombre":"Camiseta Formal","precio":29990,"stock":2,"categorias":["Ropa"]}
]`

func newCatalogHolder(t *testing.T) (*Catalog, session.Store) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/catalogo" {
			w.Write([]byte(catalogPayload))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	client := api.New(srv.URL, store)
	holder := NewCatalog(repository.NewProducts(client), repository.NewAuth(client, store), store)
	t.Cleanup(holder.Close)
	return holder, store
}

func TestCatalogCategoriesUniqueSorted(t *testing.T) {
	holder, _ := newCatalogHolder(t)
	holder.Load(context.Background())

	assert.Equal(t, []string{"Deporte", "Ropa"}, holder.Categories())
}

func TestCatalogCategoryAndSearchFilter(t *testing.T) {
	holder, _ := newCatalogHolder(t)
	holder.Load(context.Background())

	holder.SelectCategory("Deporte")
	holder.SetSearchQuery("camiseta")

	visible := holder.Products()
	require.Len(t, visible, 1)
	assert.Equal(t, "p1", visible[0].ID)
}

func TestCatalogFilterRecomputedFromBackingList(t *testing.T) {
	holder, _ := newCatalogHolder(t)
	holder.Load(context.Background())

	holder.SetSearchQuery("pelota")
	require.Len(t, holder.Products(), 1)

	// widening the query restores previously hidden products
	holder.SetSearchQuery("")
	assert.Len(t, holder.Products(), 3)
}

func TestCatalogObservesRoleChanges(t *testing.T) {
	holder, store := newCatalogHolder(t)
	assert.Equal(t, navigation.RoleAnonymous, holder.Role())

	require.NoError(t, store.Save("tok", "ADMIN"))
	require.Eventually(t, func() bool {
		return holder.Role() == navigation.RoleAdmin
	}, time.Second, 10*time.Millisecond)
}

func TestCatalogLogoutClearsSession(t *testing.T) {
	holder, store := newCatalogHolder(t)
	require.NoError(t, store.Save("tok", "CLIENTE"))

	require.NoError(t, holder.Logout())
	assert.False(t, store.Session().IsLoggedIn())
}
