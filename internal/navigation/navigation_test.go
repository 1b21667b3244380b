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

package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"DESPACHADOR", RoleDispatcher},
		{"CLIENTE", RoleCustomer},
		{"cliente", RoleCustomer},
		{"  admin  ", RoleAdmin},
		{"", RoleAnonymous},
		{"SUPERUSER", RoleAnonymous},
	} {
		assert.Equal(t, tt.want, ParseRole(tt.in), "ParseRole(%q)", tt.in)
	}
}

func TestMenuForAdmin(t *testing.T) {
	items := MenuFor(RoleAdmin)
	routes := make([]string, 0, len(items))
	for _, it := range items {
		routes = append(routes, it.Route)
	}
	assert.Equal(t, []string{RouteCatalog, RouteInventory, RouteAddProduct, RouteAdminOrders}, routes)
}

func TestMenuForDispatcherHasOnlyShipments(t *testing.T) {
	items := MenuFor(RoleDispatcher)
	assert.Equal(t, []MenuItem{
		{Label: "Catalog", Route: RouteCatalog},
		{Label: "Shipments", Route: RouteAdminOrders},
	}, items)
}

func TestMenuForCustomer(t *testing.T) {
	items := MenuFor(RoleCustomer)
	routes := make([]string, 0, len(items))
	for _, it := range items {
		routes = append(routes, it.Route)
	}
	assert.Equal(t, []string{RouteCatalog, RouteProfile, RouteClientOrders}, routes)
}

func TestMenuForAnonymousOffersLogin(t *testing.T) {
	items := MenuFor(RoleAnonymous)
	assert.Equal(t, []MenuItem{
		{Label: "Catalog", Route: RouteCatalog},
		{Label: "Log In", Route: RouteLogin},
	}, items)
}

func TestCanSee(t *testing.T) {
	// public screens
	for _, role := range []Role{RoleAnonymous, RoleCustomer, RoleDispatcher, RoleAdmin} {
		assert.True(t, CanSee(role, RouteCatalog), "%s should see the catalog", role)
		assert.True(t, CanSee(role, RouteCart), "%s should see the cart", role)
	}

	// customer screens
	assert.True(t, CanSee(RoleCustomer, RouteClientOrders))
	assert.True(t, CanSee(RoleCustomer, RouteProfile))
	assert.False(t, CanSee(RoleAdmin, RouteProfile))
	assert.False(t, CanSee(RoleAnonymous, RouteClientOrders))

	// admin screens
	assert.True(t, CanSee(RoleAdmin, RouteInventory))
	assert.False(t, CanSee(RoleDispatcher, RouteInventory))
	assert.False(t, CanSee(RoleCustomer, RouteAddProduct))

	// shipments are shared between admin and dispatcher
	assert.True(t, CanSee(RoleAdmin, RouteAdminOrders))
	assert.True(t, CanSee(RoleDispatcher, RouteAdminOrders))
	assert.False(t, CanSee(RoleCustomer, RouteAdminOrders))
}
