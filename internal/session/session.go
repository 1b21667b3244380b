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

// Package session persists the authentication token and role pair and
// exposes them as an observable value. The pair is the only client-owned
// durable state: both fields are written together on login and cleared
// together on logout.
package session

import "sync"

// Session is the locally persisted token/role pair. Both fields are empty
// until the first successful login.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// IsLoggedIn reports whether a token is present. The server remains the
// authority on whether that token is still accepted.
func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}

// Store is the session persistence contract. Save and Clear replace both
// fields atomically and notify subscribers after the write lands.
type Store interface {
	// Session returns the current snapshot.
	Session() Session
	// Subscribe returns a channel that receives the current session
	// immediately and every subsequent change. The cancel func releases
	// the subscription.
	Subscribe() (<-chan Session, func())
	Save(token, role string) error
	Clear() error
}

// notifier implements the subscriber bookkeeping shared by the store
// backends. Sends never block: a subscriber that stopped draining misses
// intermediate values but always observes the latest one eventually.
type notifier struct {
	mu   sync.Mutex
	subs map[int]chan Session
	next int
}

func (n *notifier) subscribe(current Session) (<-chan Session, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]chan Session)
	}
	id := n.next
	n.next++
	ch := make(chan Session, 8)
	ch <- current
	n.subs[id] = ch
	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if c, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(c)
		}
	}
}

func (n *notifier) publish(s Session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
