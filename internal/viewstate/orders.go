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

// orderList is the shared list/search core of the two order screens:
// newest-first backing list with a case-insensitive search over id or
// status, recomputed from the backing list on every change.
type orderList struct {
	mu           sync.Mutex
	all          []api.Order
	visible      []api.Order
	searchQuery  string
	loading      bool
	errorMessage string
}

func (l *orderList) setOrders(orders []api.Order) {
	// The gateway returns oldest first; screens show newest first.
	reversed := make([]api.Order, len(orders))
	for i, o := range orders {
		reversed[len(orders)-1-i] = o
	}
	l.all = reversed
	l.applyFilterLocked()
}

func (l *orderList) SetSearchQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.searchQuery = query
	l.applyFilterLocked()
}

func (l *orderList) applyFilterLocked() {
	if strings.TrimSpace(l.searchQuery) == "" {
		l.visible = l.all
		return
	}
	q := strings.ToLower(l.searchQuery)
	var next []api.Order
	for _, o := range l.all {
		if strings.Contains(strings.ToLower(o.ID), q) || strings.Contains(strings.ToLower(o.Status), q) {
			next = append(next, o)
		}
	}
	l.visible = next
}

func (l *orderList) Orders() []api.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]api.Order, len(l.visible))
	copy(out, l.visible)
	return out
}

func (l *orderList) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *orderList) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorMessage
}

// ClientOrders drives the customer's order history screen.
type ClientOrders struct {
	orderList
	orders *repository.Orders
}

func NewClientOrders(orders *repository.Orders) *ClientOrders {
	return &ClientOrders{orders: orders}
}

func (v *ClientOrders) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMessage = ""
	v.mu.Unlock()

	orders, err := v.orders.Mine(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		return
	}
	v.setOrders(orders)
}

// AdminOrders drives the dispatch screen: every order in the system plus
// status transitions.
type AdminOrders struct {
	orderList
	orders *repository.Orders

	successMessage string
}

func NewAdminOrders(orders *repository.Orders) *AdminOrders {
	return &AdminOrders{orders: orders}
}

func (v *AdminOrders) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMessage = ""
	v.mu.Unlock()

	orders, err := v.orders.All(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = "Could not load orders: " + err.Error()
		return
	}
	v.setOrders(orders)
}

// UpdateStatus requests the transition (status is uppercased on the way
// out) and reloads the list on success.
func (v *AdminOrders) UpdateStatus(ctx context.Context, order api.Order, newStatus string) {
	status := strings.ToUpper(newStatus)

	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	err := v.orders.UpdateStatus(ctx, order.ID, status)

	v.mu.Lock()
	if err != nil {
		v.loading = false
		v.errorMessage = "Could not update: " + err.Error()
		v.mu.Unlock()
		return
	}
	v.successMessage = "Order updated to " + status
	v.loading = false
	v.mu.Unlock()

	v.Load(ctx)
}

func (v *AdminOrders) SuccessMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.successMessage
}

func (v *AdminOrders) ClearMessages() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.successMessage = ""
	v.errorMessage = ""
}
