package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
)

// SessionData is what survives between runs: the token and the public user.
type SessionData struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// Storage persists session data. Load returns nil when nothing is stored.
type Storage interface {
	Load() (*SessionData, error)
	Save(data SessionData) error
	Clear() error
}

// FileStorage keeps the session in a JSON file readable only by the owner.
type FileStorage struct {
	path string
}

// NewFileStorage creates a storage backed by path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the session file.
func (s *FileStorage) Load() (*SessionData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Token == "" {
		return nil, nil
	}
	return &data, nil
}

// Save writes the session file, creating its directory when needed.
func (s *FileStorage) Save(data SessionData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the session file.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStorage keeps the session in memory only.
type MemoryStorage struct {
	mu   sync.Mutex
	data *SessionData
}

func (s *MemoryStorage) Load() (*SessionData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	data := *s.data
	return &data, nil
}

func (s *MemoryStorage) Save(data SessionData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = &data
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// Session is the explicit authentication context shared by the API client
// and the UI. Expire publishes on the unauthorized channel so the owner of
// the session can reset its state.
type Session struct {
	mu           sync.RWMutex
	storage      Storage
	data         *SessionData
	unauthorized chan struct{}
}

// NewSession restores a session from storage.
func NewSession(storage Storage) (*Session, error) {
	data, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Session{
		storage:      storage,
		data:         data,
		unauthorized: make(chan struct{}, 1),
	}, nil
}

// Token returns the bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return ""
	}
	return s.data.Token
}

// User returns the signed-in user.
func (s *Session) User() (models.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return models.PublicUser{}, false
	}
	return s.data.User, true
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Start stores a freshly issued token and user.
func (s *Session) Start(resp *models.AuthResponse) error {
	data := SessionData{Token: resp.Token, User: resp.User}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Save(data); err != nil {
		return err
	}
	s.data = &data
	return nil
}

// End forgets the token and user.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return s.storage.Clear()
}

// Expire ends the session after the server rejected the token and notifies
// the unauthorized channel. Pending notifications are coalesced.
func (s *Session) Expire() {
	if err := s.End(); err != nil {
		logger.Log.Errorw("failed to clear session storage", "error", err)
	}

	select {
	case s.unauthorized <- struct{}{}:
	default:
	}
}

// Unauthorized delivers a value each time the session expires.
func (s *Session) Unauthorized() <-chan struct{} {
	return s.unauthorized
}
