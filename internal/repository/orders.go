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

// Orders wraps the order endpoints.
type Orders struct {
	client *api.Client
}

func NewOrders(client *api.Client) *Orders {
	return &Orders{client: client}
}

func (o *Orders) Create(ctx context.Context, req api.OrderRequest) error {
	if err := o.client.CreateOrder(ctx, req); err != nil {
		return errors.Wrap(err, "could not create order")
	}
	return nil
}

func (o *Orders) Mine(ctx context.Context) ([]api.Order, error) {
	orders, err := o.client.MyOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load orders")
	}
	return orders, nil
}

func (o *Orders) All(ctx context.Context) ([]api.Order, error) {
	orders, err := o.client.AllOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not load orders")
	}
	return orders, nil
}

func (o *Orders) UpdateStatus(ctx context.Context, id, status string) error {
	if err := o.client.UpdateOrderStatus(ctx, id, status); err != nil {
		return errors.Wrap(err, "could not update order")
	}
	return nil
}
