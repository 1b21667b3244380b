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

	"github.com/Boychill/frotendTiendaAppMovil/internal/repository"
	"github.com/Boychill/frotendTiendaAppMovil/internal/validation"
)

// EditProduct drives the admin product edit screen. A new image is
// optional; without one the update goes out as plain JSON.
type EditProduct struct {
	products *repository.Products

	mu             sync.Mutex
	id             string
	form           ProductForm
	imageURL       string
	loading        bool
	errorMessage   string
	successMessage string
}

func NewEditProduct(products *repository.Products) *EditProduct {
	return &EditProduct{products: products}
}

// Load fills the form from the catalog. Loading the same id twice is a
// no-op so a re-render does not clobber in-progress edits.
func (v *EditProduct) Load(ctx context.Context, productID string) {
	v.mu.Lock()
	if v.id != "" && v.id == productID {
		v.mu.Unlock()
		return
	}
	v.loading = true
	v.mu.Unlock()

	p, err := v.products.Find(ctx, productID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = "Could not load product: " + err.Error()
		return
	}
	v.id = p.ID
	v.form = ProductForm{
		Name:       p.Name,
		Price:      p.Price.String(),
		Stock:      strconv.Itoa(p.Stock),
		Categories: strings.Join(p.Categories, ", "),
	}
	v.imageURL = p.ImageURL
}

// Submit validates the form and saves, replacing the image only when a new
// one is supplied.
func (v *EditProduct) Submit(ctx context.Context, form ProductForm, image io.Reader, filename string) {
	v.mu.Lock()
	v.errorMessage = ""
	v.successMessage = ""
	switch {
	case !validation.ProductName(form.Name):
		v.errorMessage = "Invalid name (min 3 letters/digits)"
	case !validation.Price(form.Price):
		v.errorMessage = "Invalid price"
	case !validation.Stock(form.Stock):
		v.errorMessage = "Invalid stock"
	case !validation.Categories(form.Categories):
		v.errorMessage = "Invalid categories"
	}
	if v.errorMessage != "" {
		v.mu.Unlock()
		return
	}
	id := v.id
	imageURL := v.imageURL
	v.loading = true
	v.mu.Unlock()

	product := formToProduct(id, form)
	product.ImageURL = imageURL
	err := v.products.Update(ctx, id, product, image, filename)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.errorMessage = err.Error()
		return
	}
	v.form = form
	v.successMessage = "Product updated"
}

func (v *EditProduct) Form() ProductForm {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

func (v *EditProduct) ImageURL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.imageURL
}

func (v *EditProduct) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *EditProduct) Messages() (success, failure string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.successMessage, v.errorMessage
}
