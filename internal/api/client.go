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

// Package api is the typed REST surface over the store gateway. Every call
// carries the current session token as a bearer header when one is present;
// an absent token means the call goes out unauthenticated and the server
// decides whether to reject it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

const defaultTimeout = 10 * time.Second

// Client talks to the store gateway. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
}

// New returns a client rooted at baseURL. The session store supplies the
// bearer token for outgoing requests.
func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		sessions: sessions,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return nil, err
	}
	if s := c.sessions.Session(); s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (out may be nil for
// void endpoints). Anything else becomes an *Error.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return newError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		blob, err := json.Marshal(in)
		if err != nil {
			return transportError(err)
		}
		body = bytes.NewReader(blob)
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return transportError(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// --- auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "auth/register", req, nil)
}

// --- catalog ---

func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.doJSON(ctx, http.MethodGet, "catalogo", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.doJSON(ctx, http.MethodGet, "catalogo/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct uploads a new product as multipart: part "product" carries
// the JSON payload, part "image" the picture bytes.
func (c *Client) CreateProduct(ctx context.Context, p Product, image io.Reader, filename string) (*Product, error) {
	body, contentType, err := productForm(p, image, filename)
	if err != nil {
		return nil, transportError(err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, "catalogo", body)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("Content-Type", contentType)
	var out Product
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p Product) (*Product, error) {
	var out Product
	if err := c.doJSON(ctx, http.MethodPut, "catalogo/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProductWithImage replaces the product data and picture in one
// multipart PUT. A nil image sends the product part alone.
func (c *Client) UpdateProductWithImage(ctx context.Context, id string, p Product, image io.Reader, filename string) (*Product, error) {
	body, contentType, err := productForm(p, image, filename)
	if err != nil {
		return nil, transportError(err)
	}
	req, err := c.newRequest(ctx, http.MethodPut, "catalogo/"+url.PathEscape(id), body)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("Content-Type", contentType)
	var out Product
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "catalogo/"+url.PathEscape(id), nil, nil)
}

func (c *Client) UpdateStock(ctx context.Context, id string, stock int) (*Product, error) {
	var out Product
	path := "catalogo/stock/" + url.PathEscape(id) + "?stock=" + strconv.Itoa(stock)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- orders ---

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) error {
	return c.doJSON(ctx, http.MethodPost, "pedidos", req, nil)
}

func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.doJSON(ctx, http.MethodGet, "pedidos/mis-pedidos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.doJSON(ctx, http.MethodGet, "pedidos/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	path := "pedidos/" + url.PathEscape(id) + "/estado?status=" + url.QueryEscape(status)
	return c.doJSON(ctx, http.MethodPut, path, nil, nil)
}

// --- profile ---

func (c *Client) MyProfile(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "perfil/mi-perfil", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*UserProfile, error) {
	var out UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "perfil/actualizar", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddAddress(ctx context.Context, a Address) (*Address, error) {
	var out Address
	if err := c.doJSON(ctx, http.MethodPost, "perfil/direcciones", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id int64, a Address) (*Address, error) {
	var out Address
	if err := c.doJSON(ctx, http.MethodPut, "perfil/direcciones/"+strconv.FormatInt(id, 10), a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "perfil/direcciones/"+strconv.FormatInt(id, 10), nil, nil)
}

// productForm builds the multipart body shared by product create/update.
func productForm(p Product, image io.Reader, filename string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="product"`)
	hdr.Set("Content-Type", "application/json")
	part, err := w.CreatePart(hdr)
	if err != nil {
		return nil, "", err
	}
	if err := json.NewEncoder(part).Encode(p); err != nil {
		return nil, "", err
	}

	if image != nil {
		file, err := w.CreateFormFile("image", filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(file, image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
