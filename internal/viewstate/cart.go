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
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/validation"
)

// Fixed user-facing strings for the confirmation flow. The screen layer
// shows these verbatim.
const (
	msgCartEmpty      = "Your cart is empty"
	msgInvalidAddress = "Please enter a valid, detailed shipping address."
	msgInvalidGPS     = "Invalid GPS coordinates (0,0). Try capturing the location again."
	msgMissingID      = "An item in your cart has no product id. Remove it and try again."
	msgStockProblem   = "Could not create the order. Check the stock of your products."
	msgConnectivity   = "Connection error or service unavailable."
	msgGenericFailure = "Something went wrong while processing your order. Try again."
)

// Cart drives the cart screen and the order confirmation flow:
// Idle -> Validating -> Submitting -> (Success | Failed) -> Idle.
// Validation failures never issue a network call; a failed submission
// leaves the cart and the form intact so the user can retry manually.
type Cart struct {
	cart    *repository.Cart
	orders  *repository.Orders
	profile *repository.Profile
	log     logrus.FieldLogger

	mu              sync.Mutex
	deliveryAddress string
	gpsLat          float64
	gpsLng          float64
	gpsCaptured     bool
	savedAddresses  []api.Address
	loading         bool
	orderSuccess    bool
	errorMessage    string
}

func NewCart(cart *repository.Cart, orders *repository.Orders, profile *repository.Profile, log logrus.FieldLogger) *Cart {
	return &Cart{cart: cart, orders: orders, profile: profile, log: log}
}

// --- cart passthrough ---

func (c *Cart) Add(p api.Product) bool { return c.cart.Add(p) }
func (c *Cart) Remove(p api.Product)   { c.cart.Remove(p) }
func (c *Cart) ClearCart()             { c.cart.Clear() }

func (c *Cart) Items() []api.Product   { return c.cart.Items() }
func (c *Cart) Total() decimal.Decimal { return c.cart.Total() }

// --- address and GPS ---

func (c *Cart) SetAddress(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deliveryAddress = address
}

func (c *Cart) Address() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deliveryAddress
}

// SetLocation records a captured GPS fix.
func (c *Cart) SetLocation(lat, lng float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gpsLat = lat
	c.gpsLng = lng
	c.gpsCaptured = true
}

func (c *Cart) ClearGPS() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gpsLat = 0
	c.gpsLng = 0
	c.gpsCaptured = false
}

func (c *Cart) Location() (lat, lng float64, captured bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gpsLat, c.gpsLng, c.gpsCaptured
}

// LoadSavedAddresses pulls the profile's address book into the holder for
// the address picker. Failures are ignored: the picker just stays empty.
func (c *Cart) LoadSavedAddresses(ctx context.Context) {
	profile, err := c.profile.Get(ctx)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.savedAddresses = profile.Addresses
}

func (c *Cart) SavedAddresses() []api.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Address, len(c.savedAddresses))
	copy(out, c.savedAddresses)
	return out
}

// SelectAddress fills the address field from a saved address and adopts its
// coordinates when they are an actual fix.
func (c *Cart) SelectAddress(a api.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deliveryAddress = a.Street + " #" + a.Number
	if a.Latitude != 0 || a.Longitude != 0 {
		c.gpsLat = a.Latitude
		c.gpsLng = a.Longitude
		c.gpsCaptured = true
	}
}

// --- confirmation ---

// Confirm validates the form, collapses the cart multiset into
// quantity-aggregated order items and submits the order exactly once.
// On success the cart is cleared, the form reset and the one-shot success
// flag set for ConsumeSuccess.
func (c *Cart) Confirm(ctx context.Context) {
	c.mu.Lock()
	items := c.cart.Items()
	if len(items) == 0 {
		c.errorMessage = msgCartEmpty
		c.mu.Unlock()
		return
	}
	if !validation.Address(c.deliveryAddress) {
		c.errorMessage = msgInvalidAddress
		c.mu.Unlock()
		return
	}
	if c.gpsCaptured && !validation.GPS(c.gpsLat, c.gpsLng) {
		c.errorMessage = msgInvalidGPS
		c.mu.Unlock()
		return
	}

	orderItems, ok := collapse(items)
	if !ok {
		// The original silently dropped id-less items from the request,
		// which masks a data problem upstream. Reject the submission and
		// make the user remove the entry instead.
		c.log.Warn("cart contains an item without a product id, rejecting submission")
		c.errorMessage = msgMissingID
		c.mu.Unlock()
		return
	}

	req := api.OrderRequest{
		TotalPrice:      c.cart.Total(),
		ShippingAddress: strings.TrimSpace(c.deliveryAddress),
		Latitude:        c.gpsLat,
		Longitude:       c.gpsLng,
		Items:           orderItems,
	}
	c.loading = true
	c.errorMessage = ""
	c.mu.Unlock()

	err := c.orders.Create(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errorMessage = classifyOrderFailure(err)
		return
	}
	c.cart.Clear()
	c.orderSuccess = true
	c.deliveryAddress = ""
	c.gpsLat = 0
	c.gpsLng = 0
	c.gpsCaptured = false
}

// ConsumeSuccess returns the success flag and clears it, so a re-render
// never triggers the post-order navigation twice.
func (c *Cart) ConsumeSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok := c.orderSuccess
	c.orderSuccess = false
	return ok
}

func (c *Cart) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Cart) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMessage
}

func (c *Cart) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorMessage = ""
}

// collapse groups the cart multiset by product id, preserving first-seen
// order, with quantity = occurrence count. It fails when any entry lacks
// an id.
func collapse(items []api.Product) ([]api.OrderItem, bool) {
	index := make(map[string]int, len(items))
	var out []api.OrderItem
	for _, p := range items {
		if p.ID == "" {
			return nil, false
		}
		if i, ok := index[p.ID]; ok {
			out[i].Quantity++
			continue
		}
		index[p.ID] = len(out)
		out = append(out, api.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  1,
			Price:     p.Price,
		})
	}
	return out, true
}

// classifyOrderFailure picks one of the three fixed user strings from the
// structured status carried by the error. 400-class means the server
// rejected the order contents (usually stock), 404 means the order service
// was unreachable behind the gateway.
func classifyOrderFailure(err error) string {
	switch api.StatusOf(err) {
	case http.StatusBadRequest:
		return msgStockProblem
	case http.StatusNotFound:
		return msgConnectivity
	default:
		return msgGenericFailure
	}
}
