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

import "github.com/shopspring/decimal"

// Wire types for the store gateway. Field names on the wire are the
// gateway's Spanish ones; the Go names are not.

func init() {
	// The gateway speaks plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Product is a catalog entry. The server is authoritative; the client never
// mutates one except through the explicit update calls.
type Product struct {
	ID         string          `json:"id,omitempty"`
	Name       string          `json:"nombre"`
	Price      decimal.Decimal `json:"precio"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	Stock      int             `json:"stock"`
	Categories []string        `json:"categorias,omitempty"`
}

// OrderRequest is the payload built from a cart snapshot. Items are
// quantity-aggregated, one entry per distinct product id.
type OrderRequest struct {
	TotalPrice      decimal.Decimal `json:"precioTotal"`
	ShippingAddress string          `json:"direccionEnvio"`
	Latitude        float64         `json:"latitud"`
	Longitude       float64         `json:"longitud"`
	Items           []OrderItem     `json:"items"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"nombre"`
	Quantity  int             `json:"cantidad"`
	Price     decimal.Decimal `json:"precio"`
}

// Order is server-owned; the client only reads it or requests a status
// transition.
type Order struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	Total           decimal.Decimal `json:"precioTotal"`
	CreatedAt       string          `json:"createdAt"`
	ShippingAddress string          `json:"direccionEnvio"`
	Items           []OrderLine     `json:"items"`
	Latitude        float64         `json:"latitud"`
	Longitude       float64         `json:"longitud"`
}

type OrderLine struct {
	Name     string          `json:"nombre"`
	Quantity int             `json:"cantidad"`
	Price    decimal.Decimal `json:"precio"`
}

type ProfileUpdate struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Phone     string `json:"telefono"`
}

type Address struct {
	ID        int64   `json:"id,omitempty"`
	Alias     string  `json:"alias"`
	Street    string  `json:"calle"`
	Number    string  `json:"numero"`
	Commune   string  `json:"comuna"`
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
}

// GPSOnly reports whether the address was saved from a raw GPS fix, with
// placeholder street and number.
func (a Address) GPSOnly() bool {
	return a.Street == "Ubicación GPS" && a.Number == "S/N" && (a.Latitude != 0 || a.Longitude != 0)
}

type UserProfile struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"nombre"`
	LastName  string    `json:"apellido"`
	Phone     string    `json:"telefono"`
	Addresses []Address `json:"addresses"`
}
