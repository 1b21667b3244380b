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
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Boychill/frotendTiendaAppMovil/internal/api"
	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/validation"
)

// ProductForm carries the raw form fields of the add/edit product screens.
// Price and stock arrive as strings and are validated before conversion.
type ProductForm struct {
	Name       string
	Price      string
	Stock      string
	Categories string
}

// AddProduct drives the admin "new product" screen. The image is required
// on creation.
type AddProduct struct {
	products *repository.Products

	mu             sync.Mutex
	loading        bool
	errorMessage   string
	successMessage string
}

func NewAddProduct(products *repository.Products) *AddProduct {
	return &AddProduct{products: products}
}

// Submit validates the form and uploads the product with its image.
func (v *AddProduct) Submit(ctx context.Context, form ProductForm, image io.Reader, filename string) {
	v.mu.Lock()
	v.errorMessage = ""
	v.successMessage = ""
	switch {
	case !validation.Name(form.Name):
		v.errorMessage = "Invalid name (min 3 characters)"
	case !validation.Price(form.Price):
		v.errorMessage = "Invalid price (must be greater than 0)"
	case !validation.Stock(form.Stock):
		v.errorMessage = "Invalid stock (0-99999)"
	case !validation.Categories(form.Categories):
		v.errorMessage = "Invalid categories (letters, digits and commas)"
	case image == nil:
		v.errorMessage = "Image is required"
	}
	if v.errorMessage != "" {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	product := formToProduct("", form)
	err := v.products.Create(ctx, product, image, filename)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		return
	}
	v.successMessage = "Product created"
}

func (v *AddProduct) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *AddProduct) Messages() (success, failure string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.successMessage, v.errorMessage
}

func formToProduct(id string, form ProductForm) api.Product {
	price, _ := decimal.NewFromString(strings.TrimSpace(form.Price))
	stock, _ := strconv.Atoi(strings.TrimSpace(form.Stock))

	var cats []string
	for _, c := range strings.Split(form.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return api.Product{
		ID:         id,
		Name:       strings.TrimSpace(form.Name),
		Price:      price,
		Stock:      stock,
		Categories: cats,
	}
}
