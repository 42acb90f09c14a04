package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/nida1khurram/school-fee-app/app/models"
	"github.com/nida1khurram/school-fee-app/app/storage"
)

const (
	// ReservedAdminUser is the bootstrap account; it can never be deleted.
	ReservedAdminUser = "admin"

	defaultAdminPassword = "admin123"
	createdAtFormat      = "2006-01-02 15:04:05"
)

var (
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrProtected    = errors.New("account is protected from deletion")
)

// Store is the file-backed credential store. The backing file is a single
// JSON object mapping username to account details, compatible with the
// users.json files written by the legacy tool. Key order in the file is
// insertion order and survives every rewrite.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a credential store backed by the JSON file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Initialize creates the backing file with the bootstrap admin account
// (admin/admin123) if no file exists yet. Calling it on an existing store
// does nothing.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat users file: %w", err)
	}

	hash, err := HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}
	table := newUserTable()
	table.put(ReservedAdminUser, models.User{
		Password:  hash,
		IsAdmin:   true,
		CreatedAt: time.Now().Format(createdAtFormat),
	})
	return s.save(table)
}

// Authenticate checks a username/password pair against the store. Unknown
// usernames, wrong passwords and unreadable stores all come back false.
func (s *Store) Authenticate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		log.Printf("Authentication error: %v", err)
		return false
	}
	user, ok := table.users[username]
	if !ok {
		return false
	}
	return CheckPasswordHash(password, user.Password)
}

// Create adds a new account. It fails with ErrUserExists if the username is
// already taken.
func (s *Store) Create(username, password string, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := table.users[username]; ok {
		return ErrUserExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	table.put(username, models.User{
		Password:  hash,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().Format(createdAtFormat),
	})
	return s.save(table)
}

// ResetPassword overwrites the stored hash for username. An unknown
// username is a silent no-op; callers pick usernames from List.
func (s *Store) ResetPassword(username, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}
	user, ok := table.users[username]
	if !ok {
		return nil
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hash
	table.users[username] = user
	return s.save(table)
}

// Delete removes an account. The bootstrap admin account and the caller's
// own account are delete-protected.
func (s *Store) Delete(username, currentUser string) error {
	if username == ReservedAdminUser || username == currentUser {
		return ErrProtected
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := table.users[username]; !ok {
		return ErrUserNotFound
	}
	table.remove(username)
	return s.save(table)
}

// List returns every account without password hashes, in the order they
// were created.
func (s *Store) List() ([]models.UserInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load()
	if err != nil {
		return nil, err
	}
	infos := make([]models.UserInfo, 0, len(table.order))
	for _, username := range table.order {
		user := table.users[username]
		infos = append(infos, models.UserInfo{
			Username:  username,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		})
	}
	return infos, nil
}

// userTable holds the decoded users file: the account map plus the key
// order of the JSON object, so insertion order survives rewrites.
type userTable struct {
	order []string
	users map[string]models.User
}

func newUserTable() *userTable {
	return &userTable{users: make(map[string]models.User)}
}

func (t *userTable) put(username string, user models.User) {
	if _, ok := t.users[username]; !ok {
		t.order = append(t.order, username)
	}
	t.users[username] = user
}

func (t *userTable) remove(username string) {
	delete(t.users, username)
	for i, name := range t.order {
		if name == username {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// load reads the users file. A missing file yields an empty table so Create
// can bootstrap a fresh store.
func (s *Store) load() (*userTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newUserTable(), nil
		}
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	table := newUserTable()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse users file: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("failed to parse users file: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse users file: %w", err)
		}
		username, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse users file: non-string key %v", tok)
		}
		var user models.User
		if err := dec.Decode(&user); err != nil {
			return nil, fmt.Errorf("failed to parse user %q: %w", username, err)
		}
		table.put(username, user)
	}
	return table, nil
}

// save writes the table back as a JSON object with keys in table order,
// atomically.
func (s *Store) save(table *userTable) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, username := range table.order {
		if i > 0 {
			buf.WriteString(", ")
		}
		key, err := json.Marshal(username)
		if err != nil {
			return fmt.Errorf("failed to encode username: %w", err)
		}
		value, err := json.Marshal(table.users[username])
		if err != nil {
			return fmt.Errorf("failed to encode user %q: %w", username, err)
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	buf.WriteByte('}')
	return storage.WriteFileAtomic(s.path, buf.Bytes())
}
