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
	"github.com/Boychill/frotendTiendaAppMovil/internal/validation"
)

// Profile drives the profile screen: personal data plus the address book.
type Profile struct {
	profile *repository.Profile

	mu           sync.Mutex
	user         *api.UserProfile
	loading      bool
	errorMessage string
}

func NewProfile(profile *repository.Profile) *Profile {
	return &Profile{profile: profile}
}

func (v *Profile) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.errorMessage = ""
	v.mu.Unlock()

	user, err := v.profile.Get(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		return
	}
	v.user = user
}

// UpdateUser validates and saves the personal fields.
func (v *Profile) UpdateUser(ctx context.Context, firstName, lastName, phone string) {
	v.mu.Lock()
	if !validation.Name(firstName) {
		v.errorMessage = "Invalid first name (must not be empty or contain digits)"
		v.mu.Unlock()
		return
	}
	if !validation.Name(lastName) {
		v.errorMessage = "Invalid last name (must not be empty or contain digits)"
		v.mu.Unlock()
		return
	}
	if !validation.Phone(phone) {
		v.errorMessage = "Invalid phone (digits only, min 8)"
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	user, err := v.profile.Update(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName), strings.TrimSpace(phone))

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		return
	}
	v.user = user
	v.errorMessage = ""
}

// SaveAddress creates (id == 0) or updates (id != 0) an address book entry.
// Street and number may be blank only when a real GPS fix is supplied, in
// which case the placeholders marking a GPS-only address are stored.
func (v *Profile) SaveAddress(ctx context.Context, id int64, alias, street, number string, lat, lng float64) {
	v.mu.Lock()
	if !validation.Text(alias) {
		v.errorMessage = "Alias is required"
		v.mu.Unlock()
		return
	}
	hasGPS := validation.GPS(lat, lng)
	if !hasGPS && (!validation.Text(street) || !validation.Text(number)) {
		v.errorMessage = "Enter street and number, or use GPS."
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	addr := api.Address{
		ID:        id,
		Alias:     alias,
		Street:    street,
		Number:    number,
		Latitude:  lat,
		Longitude: lng,
	}
	if !validation.Text(street) {
		addr.Street = "Ubicación GPS"
	}
	if !validation.Text(number) {
		addr.Number = "S/N"
	}

	var err error
	if id == 0 {
		_, err = v.profile.AddAddress(ctx, addr)
	} else {
		_, err = v.profile.UpdateAddress(ctx, id, addr)
	}

	v.mu.Lock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()
	v.Load(ctx)
}

func (v *Profile) DeleteAddress(ctx context.Context, id int64) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	err := v.profile.DeleteAddress(ctx, id)

	v.mu.Lock()
	v.loading = false
	if err != nil {
		v.errorMessage = "Error: " + err.Error()
		v.mu.Unlock()
		return
	}
	v.mu.Unlock()
	v.Load(ctx)
}

func (v *Profile) User() *api.UserProfile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.user
}

func (v *Profile) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *Profile) ErrorMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errorMessage
}

func (v *Profile) ClearError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errorMessage = ""
}
