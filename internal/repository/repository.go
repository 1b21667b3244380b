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

// Package repository wraps the gateway client into the five data surfaces
// the screens consume. Every networked operation performs exactly one
// remote call and maps any transport or HTTP failure into an error carrying
// a display-ready message; raw exceptions never cross this boundary. No
// retries, no caching, no deduplication of in-flight requests.
package repository

import "github.com/pkg/errors"

// ErrNotFound is returned by lookups that scanned a listing without a match.
var ErrNotFound = errors.New("product not found")
