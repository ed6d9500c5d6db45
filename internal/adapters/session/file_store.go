// Package session persists the logged-in user's session marker between
// runs. It fills the role browser localStorage plays for the web dashboard:
// a single slot, written at login, read once at startup, removed at logout.
package session

import (
	"context"
	"os"

	"github.com/hostelsuite/dashboard-service/internal/core/ports"
)

type FileStore struct {
	path string
}

var _ ports.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Save(ctx context.Context, token string) error {
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileStore) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
