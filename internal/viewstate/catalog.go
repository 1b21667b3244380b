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
	"sort"
	"strings"
	"sync"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/navigation"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/session"
)

// Catalog drives the product catalog screen: full list fetched on entry or
// refresh, unique sorted category set, and a purely client-side filter
// recomputed from the unfiltered backing list on every change. It also
// observes the session role for the navigation drawer.
type Catalog struct {
	products *repository.Products
	auth     *repository.Auth
	sessions session.Store

	mu               sync.Mutex
	all              []api.Product
	visible          []api.Product
	categories       []string
	selectedCategory string
	searchQuery      string
	loading          bool
	errorMessage     string

	stopRole func()
	roleMu   sync.RWMutex
	role     navigation.Role
}

func NewCatalog(products *repository.Products, auth *repository.Auth, sessions session.Store) *Catalog {
	c := &Catalog{products: products, auth: auth, sessions: sessions}
	c.role = navigation.ParseRole(sessions.Session().Role)
	ch, stop := sessions.Subscribe()
	c.stopRole = stop
	go func() {
		for s := range ch {
			c.roleMu.Lock()
			c.role = navigation.ParseRole(s.Role)
			c.roleMu.Unlock()
		}
	}()
	return c
}

// Close releases the role subscription.
func (c *Catalog) Close() {
	if c.stopRole != nil {
		c.stopRole()
	}
}

// Role is the session role as currently observed.
func (c *Catalog) Role() navigation.Role {
	c.roleMu.RLock()
	defer c.roleMu.RUnlock()
	return c.role
}

// Load fetches the full catalog and recomputes categories and the visible
// list.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.errorMessage = ""
	c.mu.Unlock()

	products, err := c.products.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errorMessage = err.Error()
		return
	}
	c.all = products

	set := make(map[string]struct{})
	for _, p := range products {
		for _, cat := range p.Categories {
			set[cat] = struct{}{}
		}
	}
	cats := make([]string, 0, len(set))
	for cat := range set {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	c.categories = cats
	c.applyFilterLocked()
}

// SelectCategory sets the category filter; empty means no category filter.
func (c *Catalog) SelectCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectedCategory = category
	c.applyFilterLocked()
}

// SetSearchQuery updates the name filter; the visible list is recomputed
// immediately, on every keystroke.
func (c *Catalog) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchQuery = query
	c.applyFilterLocked()
}

func (c *Catalog) applyFilterLocked() {
	filtered := c.all
	if c.selectedCategory != "" {
		var next []api.Product
		for _, p := range filtered {
			for _, cat := range p.Categories {
				if cat == c.selectedCategory {
					next = append(next, p)
					break
				}
			}
		}
		filtered = next
	}
	if strings.TrimSpace(c.searchQuery) != "" {
		q := strings.ToLower(c.searchQuery)
		var next []api.Product
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), q) {
				next = append(next, p)
			}
		}
		filtered = next
	}
	c.visible = filtered
}

func (c *Catalog) Products() []api.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Product, len(c.visible))
	copy(out, c.visible)
	return out
}

func (c *Catalog) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Catalog) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMessage
}

// Logout clears the persisted session; the drawer reacts through the role
// subscription.
func (c *Catalog) Logout() error {
	return c.auth.Logout()
}
