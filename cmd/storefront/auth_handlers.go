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
	"net/http"

	"github.com/pkg/errors"

	"github.com/Boychill/frotendTiendaAppMovil/internal/navigation"
)

func (fe *storefront) loginHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	log.WithField("email", body.Email).Debug("logging in user")

	if !fe.login.Submit(r.Context(), body.Email, body.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success":        false,
			"email_error":    fe.login.EmailError(),
			"password_error": fe.login.PasswordError(),
			"error":          fe.login.FormError(),
		})
		return
	}

	role := navigation.ParseRole(fe.sessions.Session().Role)
	log.WithField("role", role.String()).Info("user logged in")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"role":     role.String(),
		"redirect": navigation.RouteCatalog,
	})
}

func (fe *storefront) registerHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)

	var body struct {
		FirstName string `json:"nombre"`
		LastName  string `json:"apellido"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(r, w, errors.Wrap(err, "invalid payload"), http.StatusBadRequest)
		return
	}
	log.WithField("email", body.Email).Debug("registering user")

	fe.register.Submit(r.Context(), body.FirstName, body.LastName, body.Email, body.Password)
	if !fe.register.Success() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"success":        false,
			"name_error":     fe.register.NameError(),
			"email_error":    fe.register.EmailError(),
			"password_error": fe.register.PasswordError(),
			"error":          fe.register.FormError(),
		})
		return
	}

	log.Info("user registered")
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"redirect": navigation.RouteLogin,
	})
}

func (fe *storefront) logoutHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r)
	log.Debug("logging out")

	fe.cart.ClearCart()
	if err := fe.catalog.Logout(); err != nil {
		renderError(r, w, errors.Wrap(err, "clearing session"), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"redirect": navigation.RouteLogin,
	})
}
