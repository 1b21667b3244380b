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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
	}{
		{"user@mail.com", true},
		{"a.b+c@sub.example.org", true},
		{"useratmail.com", false},
		{"user@", false},
		{"", false},
		{"  user@mail.com  ", false},
	} {
		assert.Equal(t, tt.ok, Email(tt.in), "Email(%q)", tt.in)
	}
}

func TestStrongPassword(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
	}{
		{"Abc123", true},
		{"abc123", false},  // no uppercase
		{"Abcdef", false},  // no digit
		{"Ab1", false},     // too short
		{"PASSWORD9", true},
	} {
		assert.Equal(t, tt.ok, StrongPassword(tt.in), "StrongPassword(%q)", tt.in)
	}
}

func TestName(t *testing.T) {
	assert.True(t, Name("María José"))
	assert.True(t, Name("Ñandú"))
	assert.False(t, Name("Al"))
	assert.False(t, Name("R2D2"))
	assert.False(t, Name(""))
}

func TestPrice(t *testing.T) {
	assert.True(t, Price("19.99"))
	assert.True(t, Price("1"))
	assert.False(t, Price("0"))
	assert.False(t, Price("-5"))
	assert.False(t, Price("100000000"))
	assert.False(t, Price("abc"))
}

func TestStock(t *testing.T) {
	assert.True(t, Stock("0"))
	assert.True(t, Stock("99999"))
	assert.False(t, Stock("100000"))
	assert.False(t, Stock("-1"))
	assert.False(t, Stock("ten"))
}

func TestAddress(t *testing.T) {
	assert.True(t, Address("Main St 123"))
	assert.False(t, Address("abcd"))
	assert.False(t, Address("    ab    "))
}

func TestPhone(t *testing.T) {
	assert.True(t, Phone("+56912345678"))
	assert.True(t, Phone("12345678"))
	assert.False(t, Phone("1234567"))
	assert.False(t, Phone("+123456789012345678"))
	assert.False(t, Phone("phone"))
}

func TestGPS(t *testing.T) {
	assert.True(t, GPS(-33.45, -70.66))
	assert.True(t, GPS(0, -70.66))
	assert.False(t, GPS(0, 0))
}
