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
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFakeImage() io.Reader { return bytes.NewReader([]byte("\x89PNG fake")) }

func newTestStore(t *testing.T) session.Store {
	t.Helper()
	fs, err := session.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	return fs
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"tok-1","role":"CLIENTE","userId":7}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	out, err := c.Login(context.Background(), "user@mail.com", "Abc123")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", out.Token)
	assert.Equal(t, "CLIENTE", out.Role)
}

func TestBearerTokenForwarded(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newTestStore(t)
	require.NoError(t, store.Save("tok-9", "ADMIN"))

	c := New(srv.URL, store)
	_, err := c.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", got)
}

func TestProductsDecodeWireNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalogo", r.URL.Path)
		w.Write([]byte(`[{"id":"p1","nombre":"Camiseta","precio":19990,"stock":4,"categorias":["Deporte"]}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Camiseta", products[0].Name)
	assert.Equal(t, "19990", products[0].Price.String())
	assert.Equal(t, 4, products[0].Stock)
}

func TestErrorBodyParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Stock insuficiente para el producto p1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	err := c.CreateOrder(context.Background(), OrderRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Reason, "Stock insuficiente")
}

func TestStatusOfTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", newTestStore(t)) // nothing listens here
	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
}

func TestUpdateStockUsesQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/catalogo/stock/p1", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("stock"))
		w.Write([]byte(`{"id":"p1","nombre":"x","precio":1,"stock":12}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	p, err := c.UpdateStock(context.Background(), "p1", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Stock)
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/pedidos/o1/estado", r.URL.Path)
		assert.Equal(t, "ENVIADO", r.URL.Query().Get("status"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	require.NoError(t, c.UpdateOrderStatus(context.Background(), "o1", "ENVIADO"))
}

func TestCreateProductSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Contains(t, r.MultipartForm.Value["product"][0], `"nombre":"Camiseta"`)
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "shirt.png", header.Filename)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1","nombre":"Camiseta","precio":19990,"stock":4}`))
	}))
	defer srv.Close()

	c := New(srv.URL, newTestStore(t))
	p := Product{Name: "Camiseta", Price: mustDecimal("19990"), Stock: 4}
	out, err := c.CreateProduct(context.Background(), p, newFakeImage(), "shirt.png")
	require.NoError(t, err)
	assert.Equal(t, "p1", out.ID)
}
