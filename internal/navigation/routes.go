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

// Route names mirror the original navigation graph one-to-one.
const (
	RouteLogin        = "login"
	RouteRegister     = "register"
	RouteCatalog      = "catalogo"
	RouteCart         = "cart"
	RouteClientOrders = "client/orders"
	RouteProfile      = "client/profile"
	RouteAddProduct   = "admin/add-product"
	RouteAdminOrders  = "admin/orders"
	RouteInventory    = "admin/inventory"
	// RouteEditProduct takes the product id as its single argument.
	RouteEditProduct = "admin/edit-product/{productId}"
)

// MenuItem is one drawer entry.
type MenuItem struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// MenuFor returns the drawer entries visible to role. Customers keep their
// profile and order history; admin staff and dispatchers lose those and
// gain the management entries instead.
func MenuFor(role Role) []MenuItem {
	items := []MenuItem{{Label: "Catalog", Route: RouteCatalog}}

	switch role {
	case RoleAdmin:
		items = append(items,
			MenuItem{Label: "Inventory", Route: RouteInventory},
			MenuItem{Label: "Add Product", Route: RouteAddProduct},
			MenuItem{Label: "Shipments", Route: RouteAdminOrders},
		)
	case RoleDispatcher:
		items = append(items,
			MenuItem{Label: "Shipments", Route: RouteAdminOrders},
		)
	case RoleCustomer:
		items = append(items,
			MenuItem{Label: "My Profile", Route: RouteProfile},
			MenuItem{Label: "My Orders", Route: RouteClientOrders},
		)
	case RoleAnonymous:
		items = append(items, MenuItem{Label: "Log In", Route: RouteLogin})
	}
	return items
}

// CanSee reports whether role may be offered the given route in the UI.
// The server still rejects unauthorized calls regardless of what the
// client shows.
func CanSee(role Role, route string) bool {
	switch route {
	case RouteLogin, RouteRegister, RouteCatalog, RouteCart:
		return true
	case RouteClientOrders, RouteProfile:
		return role == RoleCustomer
	case RouteInventory, RouteAddProduct, RouteEditProduct:
		return role == RoleAdmin
	case RouteAdminOrders:
		return role == RoleAdmin || role == RoleDispatcher
	default:
		return false
	}
}
