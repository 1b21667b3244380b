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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the session pair in a small JSON preferences file,
// written atomically via a temp file and rename.
type FileStore struct {
	path string

	mu      sync.RWMutex
	current Session
	notifier
}

// NewFileStore loads the session from path, treating a missing file as an
// empty session (first launch).
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}
	if err := json.Unmarshal(blob, &fs.current); err != nil {
		return nil, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return fs, nil
}

func (fs *FileStore) Session() Session {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.current
}

func (fs *FileStore) Subscribe() (<-chan Session, func()) {
	fs.mu.RLock()
	current := fs.current
	fs.mu.RUnlock()
	return fs.subscribe(current)
}

func (fs *FileStore) Save(token, role string) error {
	return fs.write(Session{Token: token, Role: role})
}

func (fs *FileStore) Clear() error {
	return fs.write(Session{})
}

func (fs *FileStore) write(s Session) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	blob, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0600); err != nil {
		return fmt.Errorf("session: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	fs.current = s
	fs.publish(s)
	return nil
}
