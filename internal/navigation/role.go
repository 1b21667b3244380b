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

// Package navigation holds the static named-route graph and the role-based
// inclusion rules for menu entries. Gating here is presentation only; the
// server is the actual authorization boundary.
package navigation

import "strings"

// Role is the closed set of session roles. The gateway transmits roles as
// plain strings; anything unrecognized degrades to Anonymous.
type Role int

const (
	RoleAnonymous Role = iota
	RoleCustomer
	RoleDispatcher
	RoleAdmin
)

// ParseRole maps the gateway's role string onto the closed variant.
// "DESPACHADOR" is the dispatcher role, "CLIENTE" the customer role.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin
	case "DESPACHADOR":
		return RoleDispatcher
	case "CLIENTE":
		return RoleCustomer
	default:
		return RoleAnonymous
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleDispatcher:
		return "DESPACHADOR"
	case RoleCustomer:
		return "CLIENTE"
	case RoleAnonymous:
		return ""
	default:
		return ""
	}
}
