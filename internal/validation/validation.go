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

// Package validation holds the field validators shared by the view-state
// holders. Every check is purely local; a value that fails here never
// reaches the network.
package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe       = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	nameRe        = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	productNameRe = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑ\s.\-]+$`)
	categoriesRe  = regexp.MustCompile(`^[a-zA-Z0-9áéíóúÁÉÍÓÚñÑ\s,]+$`)
	phoneRe       = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	upperRe       = regexp.MustCompile(`[A-Z]`)
	digitRe       = regexp.MustCompile(`[0-9]`)
)

func Email(email string) bool {
	return strings.TrimSpace(email) != "" && emailRe.MatchString(email)
}

func Password(password string) bool {
	return len(password) >= 6
}

// StrongPassword is the registration rule: at least 6 characters with one
// uppercase letter and one digit.
func StrongPassword(password string) bool {
	return len(password) >= 6 && upperRe.MatchString(password) && digitRe.MatchString(password)
}

// Name accepts letters, accents and spaces only, so "User123" is rejected.
func Name(text string) bool {
	return len([]rune(strings.TrimSpace(text))) >= 3 && nameRe.MatchString(text)
}

func ProductName(text string) bool {
	return len([]rune(strings.TrimSpace(text))) >= 3 && productNameRe.MatchString(text)
}

func Price(price string) bool {
	p, err := strconv.ParseFloat(price, 64)
	return err == nil && p > 0 && p < 100_000_000
}

func Stock(stock string) bool {
	s, err := strconv.Atoi(stock)
	return err == nil && s >= 0 && s < 100_000
}

func Categories(text string) bool {
	return strings.TrimSpace(text) != "" && categoriesRe.MatchString(text)
}

// Address rejects empty or very short delivery addresses.
func Address(address string) bool {
	return len([]rune(strings.TrimSpace(address))) >= 5
}

func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// GPS reports whether the pair is an actually captured fix rather than the
// (0, 0) default.
func GPS(lat, lng float64) bool {
	return lat != 0 || lng != 0
}

func Text(text string) bool {
	return strings.TrimSpace(text) != ""
}
