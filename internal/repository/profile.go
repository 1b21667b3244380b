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
	"context"

	"github.com/pkg/errors"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
)

// Profile wraps the user profile and address book endpoints.
type Profile struct {
	client *api.Client
}

func NewProfile(client *api.Client) *Profile {
	return &Profile{client: client}
}

func (p *Profile) Get(ctx context.Context) (*api.UserProfile, error) {
	profile, err := p.client.MyProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load profile")
	}
	return profile, nil
}

func (p *Profile) Update(ctx context.Context, firstName, lastName, phone string) (*api.UserProfile, error) {
	profile, err := p.client.UpdateProfile(ctx, api.ProfileUpdate{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not update profile")
	}
	return profile, nil
}

func (p *Profile) AddAddress(ctx context.Context, a api.Address) (*api.Address, error) {
	saved, err := p.client.AddAddress(ctx, a)
	if err != nil {
		return nil, errors.Wrap(err, "could not save address")
	}
	return saved, nil
}

func (p *Profile) UpdateAddress(ctx context.Context, id int64, a api.Address) (*api.Address, error) {
	saved, err := p.client.UpdateAddress(ctx, id, a)
	if err != nil {
		return nil, errors.Wrap(err, "could not update address")
	}
	return saved, nil
}

func (p *Profile) DeleteAddress(ctx context.Context, id int64) error {
	if err := p.client.DeleteAddress(ctx, id); err != nil {
		return errors.Wrap(err, "could not delete address")
	}
	return nil
}
