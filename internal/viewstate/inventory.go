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
	"strings"
	"sync"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
)

// Inventory drives the admin inventory screen: the full product list with a
// search over name or id, plus delete and stock adjustment.
type Inventory struct {
	products *repository.Products

	mu             sync.Mutex
	all            []api.Product
	visible        []api.Product
	searchQuery    string
	loading        bool
	errorMessage   string
	successMessage string
}

func NewInventory(products *repository.Products) *Inventory {
	return &Inventory{products: products}
}

func (v *Inventory) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMessage = ""
	v.mu.Unlock()

	products, err := v.products.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = "Could not load inventory"
		return
	}
	v.all = products
	v.applyFilterLocked()
}

func (v *Inventory) SetSearchQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.searchQuery = query
	v.applyFilterLocked()
}

func (v *Inventory) applyFilterLocked() {
	if strings.TrimSpace(v.searchQuery) == "" {
		v.visible = v.all
		return
	}
	q := strings.ToLower(v.searchQuery)
	var next []api.Product
	for _, p := range v.all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.ID), q) {
			next = append(next, p)
		}
	}
	v.visible = next
}

// Delete removes the product remotely and, on success, from the backing
// list without a refetch.
func (v *Inventory) Delete(ctx context.Context, p api.Product) {
	if p.ID == "" {
		return
	}
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	err := v.products.Delete(ctx, p.ID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = "Could not delete: " + err.Error()
		return
	}
	var kept []api.Product
	for _, item := range v.all {
		if item.ID != p.ID {
			kept = append(kept, item)
		}
	}
	v.all = kept
	v.applyFilterLocked()
	v.successMessage = "Product deleted"
}

// UpdateStock sets the product's stock remotely and reloads the list on
// success.
func (v *Inventory) UpdateStock(ctx context.Context, p api.Product, newStock int) {
	if p.ID == "" {
		return
	}
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	err := v.products.UpdateStock(ctx, p.ID, newStock)

	v.mu.Lock()
	if err != nil {
		v.loading = false
		v.errorMessage = err.Error()
		v.mu.Unlock()
		return
	}
	v.successMessage = "Stock updated"
	v.loading = false
	v.mu.Unlock()

	v.Load(ctx)
}

func (v *Inventory) Products() []api.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]api.Product, len(v.visible))
	copy(out, v.visible)
	return out
}

func (v *Inventory) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *Inventory) Messages() (success, failure string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.successMessage, v.errorMessage
}

func (v *Inventory) ClearMessages() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.successMessage = ""
	v.errorMessage = ""
}
