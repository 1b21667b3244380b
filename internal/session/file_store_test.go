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

package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	assert.False(t, fs.Session().IsLoggedIn())

	require.NoError(t, fs.Save("tok-123", "CLIENTE"))
	s := fs.Session()
	assert.Equal(t, "tok-123", s.Token)
	assert.Equal(t, "CLIENTE", s.Role)
	assert.True(t, s.IsLoggedIn())

	// a new store over the same file sees the persisted session
	fs2, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, s, fs2.Session())
}

func TestFileStoreClearRemovesBothFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, fs.Save("tok", "ADMIN"))
	require.NoError(t, fs.Clear())

	s := fs.Session()
	assert.Empty(t, s.Token)
	assert.Empty(t, s.Role)
	assert.False(t, s.IsLoggedIn())
}

func TestFileStoreMissingFileIsEmptySession(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "does", "not", "exist.json"))
	require.NoError(t, err)
	assert.Equal(t, Session{}, fs.Session())
}

func TestFileStoreSubscribe(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	ch, cancel := fs.Subscribe()
	defer cancel()

	// current value arrives first
	select {
	case s := <-ch:
		assert.False(t, s.IsLoggedIn())
	case <-time.After(time.Second):
		t.Fatal("no initial session published")
	}

	require.NoError(t, fs.Save("tok", "DESPACHADOR"))
	select {
	case s := <-ch:
		assert.Equal(t, "DESPACHADOR", s.Role)
	case <-time.After(time.Second):
		t.Fatal("no session published after save")
	}
}
