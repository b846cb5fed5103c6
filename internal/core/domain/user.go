package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminUsername is the distinguished account seeded on first access.
// It always carries RoleAdmin and can never be deleted.
const (
	AdminUsername        = "Admin"
	DefaultAdminPassword = "adaS$128"
)

// User models an authenticated actor in the system.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credential is the stored record behind a username. Passwords are kept in
// plain text.
type Credential struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Account pairs a username with its credential.
type Account struct {
	Username string
	Credential
}

// User returns the public view of the account.
func (a Account) User() User {
	return User{Username: a.Username, Role: a.Role}
}

// RoleFor derives a role from the username alone. Only used for records
// written before roles were stored alongside the password.
func RoleFor(username string) string {
	if username == AdminUsername {
		return RoleAdmin
	}
	return RoleUser
}

// UserBook is the users document: an ordered username -> credential object.
// Insertion order is significant and survives a JSON round trip.
type UserBook struct {
	accounts []Account
}

// NewUserBook returns a book holding only the seeded admin account.
func NewUserBook() *UserBook {
	return &UserBook{accounts: []Account{{
		Username:   AdminUsername,
		Credential: Credential{Password: DefaultAdminPassword, Role: RoleAdmin},
	}}}
}

// Lookup returns the account stored under username.
func (b *UserBook) Lookup(username string) (Account, bool) {
	for _, a := range b.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return Account{}, false
}

// Add appends a new account. It fails with ErrUserExists on a taken username.
func (b *UserBook) Add(a Account) error {
	if _, ok := b.Lookup(a.Username); ok {
		return ErrUserExists
	}
	b.accounts = append(b.accounts, a)
	return nil
}

// Remove deletes the account if present and reports whether it existed.
func (b *UserBook) Remove(username string) bool {
	for i, a := range b.accounts {
		if a.Username == username {
			b.accounts = append(b.accounts[:i], b.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Accounts returns a copy of the accounts in insertion order.
func (b *UserBook) Accounts() []Account {
	out := make([]Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}

func (b *UserBook) Len() int { return len(b.accounts) }

// MarshalJSON writes the book as a JSON object keyed by username, keeping
// insertion order.
func (b *UserBook) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range b.accounts {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Username)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.Credential)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the users document. Values are either a credential
// object or, in the legacy layout, a bare password string.
func (b *UserBook) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("users document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("users document: expected object, got %v", tok)
	}

	b.accounts = b.accounts[:0]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("users document: %w", err)
		}
		username, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("users document %q: %w", username, err)
		}
		cred, err := decodeCredential(username, raw)
		if err != nil {
			return err
		}
		b.accounts = append(b.accounts, Account{Username: username, Credential: cred})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("users document: %w", err)
	}
	return nil
}

func decodeCredential(username string, raw json.RawMessage) (Credential, error) {
	var password string
	if err := json.Unmarshal(raw, &password); err == nil {
		return Credential{Password: password, Role: RoleFor(username)}, nil
	}

	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return Credential{}, fmt.Errorf("users document %q: %w", username, err)
	}
	if cred.Role == "" {
		cred.Role = RoleFor(username)
	}
	return cred, nil
}
