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
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
)

// Cart is the one stateful, non-networked repository: a client-only
// multiset of products awaiting order submission. Quantity is implicit in
// repeated entries; there is no per-line quantity field. Contents are never
// persisted and vanish with the process.
type Cart struct {
	mu    sync.Mutex
	items []api.Product

	subs    map[int]chan []api.Product
	nextSub int
}

func NewCart() *Cart {
	return &Cart{subs: make(map[int]chan []api.Product)}
}

// Add appends p when the number of entries already carrying p's id is below
// p.Stock, and reports whether it did. The stock value is the one captured
// in the argument at call time; it is not re-fetched, so a stale snapshot
// is possible and the server remains the final authority at order time.
func (c *Cart) Add(p api.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	inCart := 0
	for _, item := range c.items {
		if item.ID == p.ID {
			inCart++
		}
	}
	if inCart >= p.Stock {
		return false
	}
	c.items = append(c.items, p)
	c.notifyLocked()
	return true
}

// Remove drops the first entry matching p's id. Absent ids are a no-op.
func (c *Cart) Remove(p api.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == p.ID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.notifyLocked()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.notifyLocked()
}

// Total sums price over all entries.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price)
	}
	return total
}

// Items returns a snapshot of the current contents.
func (c *Cart) Items() []api.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Cart) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subscribe returns a channel receiving the current contents immediately
// and a fresh snapshot after every mutation. The cancel func releases the
// subscription.
func (c *Cart) Subscribe() (<-chan []api.Product, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan []api.Product, 8)
	ch <- c.snapshotLocked()
	c.subs[id] = ch
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

func (c *Cart) snapshotLocked() []api.Product {
	out := make([]api.Product, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) notifyLocked() {
	snap := c.snapshotLocked()
	for _, ch := range c.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}
