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
	"io"

	"github.com/pkg/errors"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
)

// Products wraps the catalog endpoints.
type Products struct {
	client *api.Client
}

func NewProducts(client *api.Client) *Products {
	return &Products{client: client}
}

func (p *Products) List(ctx context.Context) ([]api.Product, error) {
	products, err := p.client.Products(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load catalog")
	}
	return products, nil
}

// Find fetches the full catalog and scans it for id. The gateway also has a
// by-id endpoint, but the listing is already warm on every screen that
// calls this, so the original client resolved lookups against it.
func (p *Products) Find(ctx context.Context, id string) (*api.Product, error) {
	products, err := p.client.Products(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load catalog")
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (p *Products) Create(ctx context.Context, product api.Product, image io.Reader, filename string) error {
	if _, err := p.client.CreateProduct(ctx, product, image, filename); err != nil {
		return errors.Wrap(err, "could not create product")
	}
	return nil
}

// Update sends a multipart update when a new image is supplied and a plain
// JSON update otherwise.
func (p *Products) Update(ctx context.Context, id string, product api.Product, image io.Reader, filename string) error {
	var err error
	if image != nil {
		_, err = p.client.UpdateProductWithImage(ctx, id, product, image, filename)
	} else {
		_, err = p.client.UpdateProduct(ctx, id, product)
	}
	if err != nil {
		return errors.Wrap(err, "could not update product")
	}
	return nil
}

func (p *Products) Delete(ctx context.Context, id string) error {
	if err := p.client.DeleteProduct(ctx, id); err != nil {
		return errors.Wrap(err, "could not delete product")
	}
	return nil
}

func (p *Products) UpdateStock(ctx context.Context, id string, stock int) error {
	if _, err := p.client.UpdateStock(ctx, id, stock); err != nil {
		return errors.Wrap(err, "could not update stock")
	}
	return nil
}
