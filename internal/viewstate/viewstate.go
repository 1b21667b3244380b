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

// Package viewstate holds the per-screen state holders. Each holder
// orchestrates repository calls, keeps the UI-facing fields (loading flag,
// error string, data lists) behind a mutex, and exposes snapshot accessors
// for the screen layer to render. Holders never touch the gateway client
// directly and never surface anything but display-ready strings.
package viewstate
