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

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/navigation"
	"github.com/Boychill/frotendTiendaAppMovil/internal/viewstate"
)

const maxProductUpload = 10 << 20 // matches the gateway's multipart limit

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func renderError(r *http.Request, w http.ResponseWriter, err error, code int) {
	requestLogger(r).WithField("error", err).Error("request error")
	writeJSON(w, code, map[string]interface{}{
		"error":       err.Error(),
		"status_code": code,
	})
}

// requireRole hides a screen from roles that should not see it. This is
// presentation-level gating only; the gateway rejects unauthorized calls
// regardless of what the client shows.
func (fe *storefront) requireRole(w http.ResponseWriter, r *http.Request, route string) bool {
	role := navigation.ParseRole(fe.sessions.Session().Role)
	if !navigation.CanSee(role, route) {
		renderError(r, w, errors.New("not available for this role"), http.StatusForbidden)
		return false
	}
	return true
}

func (fe *storefront) menuHandler(w http.ResponseWriter, r *http.Request) {
	role := navigation.ParseRole(fe.sessions.Session().Role)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"role":  role.String(),
		"items": navigation.MenuFor(role),
	})
}

// --- catalog ---

func (fe *storefront) catalogHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	log.WithField("q", r.URL.Query().Get("q")).Debug("serving catalog")

	fe.catalog.Load(r.Context())
	fe.catalog.SelectCategory(r.URL.Query().Get("category"))
	fe.catalog.SetSearchQuery(r.URL.Query().Get("q"))

	if msg := fe.catalog.ErrorMessage(); msg != "" {
		renderError(r, w, errors.New(msg), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products":   fe.catalog.Products(),
		"categories": fe.catalog.Categories(),
		"role":       fe.catalog.Role().String(),
		"cart_size":  len(fe.cart.Items()),
	})
}

// --- cart ---

func (fe *storefront) viewCartHandler(w http.ResponseWriter, r *http.Request) {
	lat, lng, captured := fe.cart.Location()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":        fe.cart.Items(),
		"total":        fe.cart.Total(),
		"address":      fe.cart.Address(),
		"gps_captured": captured,
		"lat":          lat,
		"lng":          lng,
	})
}

func (fe *storefront) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	var p api.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid product payload"), http.StatusBadRequest)
		return
	}
	requestLogger(r).WithField("product", p.ID).Debug("adding to cart")

	if !fe.cart.Add(p) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"accepted": false,
			"error":    "Not enough stock for this product",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"accepted": true, "cart_size": len(fe.cart.Items())})
}

func (fe *storefront) removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.cart.Remove(api.Product{ID: body.ID})
	writeJSON(w, http.StatusOK, map[string]interface{}{"cart_size": len(fe.cart.Items())})
}

func (fe *storefront) emptyCartHandler(w http.ResponseWriter, r *http.Request) {
	requestLogger(r).Debug("emptying cart")
	fe.cart.ClearCart()
	writeJSON(w, http.StatusOK, map[string]interface{}{"cart_size": 0})
}

func (fe *storefront) cartAddressHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.cart.SetAddress(body.Address)
	w.WriteHeader(http.StatusNoContent)
}

func (fe *storefront) cartLocationHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.cart.SetLocation(body.Lat, body.Lng)
	w.WriteHeader(http.StatusNoContent)
}

func (fe *storefront) cartSavedAddressesHandler(w http.ResponseWriter, r *http.Request) {
	fe.cart.LoadSavedAddresses(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"addresses": fe.cart.SavedAddresses()})
}

func (fe *storefront) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	log.Debug("placing order")

	fe.cart.Confirm(r.Context())

	if fe.cart.ConsumeSuccess() {
		log.Info("order placed")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"redirect": navigation.RouteCatalog,
		})
		return
	}
	msg := fe.cart.ErrorMessage()
	fe.cart.ClearError()
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

// --- orders ---

func (fe *storefront) clientOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteClientOrders) {
		return
	}
	fe.clientOrders.Load(r.Context())
	fe.clientOrders.SetSearchQuery(r.URL.Query().Get("q"))
	if msg := fe.clientOrders.ErrorMessage(); msg != "" {
		renderError(r, w, errors.New(msg), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": fe.clientOrders.Orders()})
}

func (fe *storefront) adminOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteAdminOrders) {
		return
	}
	fe.adminOrders.Load(r.Context())
	fe.adminOrders.SetSearchQuery(r.URL.Query().Get("q"))
	if msg := fe.adminOrders.ErrorMessage(); msg != "" {
		renderError(r, w, errors.New(msg), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": fe.adminOrders.Orders()})
}

func (fe *storefront) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteAdminOrders) {
		return
	}
	id := mux.Vars(r)["id"]
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.adminOrders.UpdateStatus(r.Context(), api.Order{ID: id}, body.Status)
	success, failure := fe.adminOrders.SuccessMessage(), fe.adminOrders.ErrorMessage()
	fe.adminOrders.ClearMessages()
	if failure != "" {
		renderError(r, w, errors.New(failure), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": success})
}

// --- inventory ---

func (fe *storefront) inventoryHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteInventory) {
		return
	}
	fe.inventory.Load(r.Context())
	fe.inventory.SetSearchQuery(r.URL.Query().Get("q"))
	_, failure := fe.inventory.Messages()
	if failure != "" {
		fe.inventory.ClearMessages()
		renderError(r, w, errors.New(failure), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": fe.inventory.Products()})
}

func (fe *storefront) updateStockHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteInventory) {
		return
	}
	id := mux.Vars(r)["id"]
	var body struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.inventory.UpdateStock(r.Context(), api.Product{ID: id}, body.Stock)
	success, failure := fe.inventory.Messages()
	fe.inventory.ClearMessages()
	if failure != "" {
		renderError(r, w, errors.New(failure), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": success})
}

func (fe *storefront) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteInventory) {
		return
	}
	id := mux.Vars(r)["id"]
	fe.inventory.Delete(r.Context(), api.Product{ID: id})
	success, failure := fe.inventory.Messages()
	fe.inventory.ClearMessages()
	if failure != "" {
		renderError(r, w, errors.New(failure), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": success})
}

// --- product create / edit ---

// parseProductForm reads the multipart product form shared by the add and
// edit screens. The image part is optional; image is nil when absent.
func parseProductForm(r *http.Request) (form viewstate.ProductForm, image io.Reader, filename string, err error) {
	if err = r.ParseMultipartForm(maxProductUpload); err != nil {
		return form, nil, "", errors.Wrap(err, "parsing product form")
	}
	form = viewstate.ProductForm{
		Name:       r.FormValue("name"),
		Price:      r.FormValue("price"),
		Stock:      r.FormValue("stock"),
		Categories: r.FormValue("categories"),
	}
	file, header, ferr := r.FormFile("image")
	if ferr == http.ErrMissingFile {
		return form, nil, "", nil
	}
	if ferr != nil {
		return form, nil, "", errors.Wrap(ferr, "reading product image")
	}
	return form, file, header.Filename, nil
}

func (fe *storefront) addProductHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteAddProduct) {
		return
	}
	form, image, filename, err := parseProductForm(r)
	if err != nil {
		renderError(r, w, err, http.StatusBadRequest)
		return
	}
	fe.addProduct.Submit(r.Context(), form, image, filename)
	success, failure := fe.addProduct.Messages()
	if failure != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": failure})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": success})
}

func (fe *storefront) editProductFormHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteEditProduct) {
		return
	}
	fe.editProduct.Load(r.Context(), mux.Vars(r)["productId"])
	_, failure := fe.editProduct.Messages()
	if failure != "" {
		renderError(r, w, errors.New(failure), http.StatusNotFound)
		return
	}
	form := fe.editProduct.Form()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"form":      form,
		"image_url": fe.editProduct.ImageURL(),
	})
}

func (fe *storefront) editProductHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteEditProduct) {
		return
	}
	fe.editProduct.Load(r.Context(), mux.Vars(r)["productId"])
	form, image, filename, err := parseProductForm(r)
	if err != nil {
		renderError(r, w, err, http.StatusBadRequest)
		return
	}
	fe.editProduct.Submit(r.Context(), form, image, filename)
	success, failure := fe.editProduct.Messages()
	if failure != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": failure})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": success})
}

// --- profile ---

func (fe *storefront) profileHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteProfile) {
		return
	}
	fe.profile.Load(r.Context())
	if msg := fe.profile.ErrorMessage(); msg != "" {
		fe.profile.ClearError()
		renderError(r, w, errors.New(msg), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": fe.profile.User()})
}

func (fe *storefront) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteProfile) {
		return
	}
	var body struct {
		FirstName string `json:"nombre"`
		LastName  string `json:"apellido"`
		Phone     string `json:"telefono"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.profile.UpdateUser(r.Context(), body.FirstName, body.LastName, body.Phone)
	if msg := fe.profile.ErrorMessage(); msg != "" {
		fe.profile.ClearError()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": msg})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": fe.profile.User()})
}

func (fe *storefront) saveAddressHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteProfile) {
		return
	}
	var body struct {
		ID     int64   `json:"id"`
		Alias  string  `json:"alias"`
		Street string  `json:"calle"`
		Number string  `json:"numero"`
		Lat    float64 `json:"latitud"`
		Lng    float64 `json:"longitud"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	fe.profile.SaveAddress(r.Context(), body.ID, body.Alias, body.Street, body.Number, body.Lat, body.Lng)
	if msg := fe.profile.ErrorMessage(); msg != "" {
		fe.profile.ClearError()
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": msg})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": fe.profile.User()})
}

func (fe *storefront) deleteAddressHandler(w http.ResponseWriter, r *http.Request) {
	if !fe.requireRole(w, r, navigation.RouteProfile) {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		renderError(r, w, errors.Wrap(err, "invalid address id"), http.StatusBadRequest)
		return
	}
	fe.profile.DeleteAddress(r.Context(), id)
	if msg := fe.profile.ErrorMessage(); msg != "" {
		fe.profile.ClearError()
		renderError(r, w, errors.New(msg), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"profile": fe.profile.User()})
}
