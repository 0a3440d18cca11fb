package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the single operator credential pair. It lives in memory
// only and is rebuilt from configuration on every start.
type Credentials struct {
	mu           sync.RWMutex
	username     string
	passwordHash []byte
	cost         int
}

func NewCredentials(username, password string, cost int) (*Credentials, error) {
	c := &Credentials{cost: cost}
	if err := c.Replace(username, password); err != nil {
		return nil, err
	}
	return c, nil
}

func normalizeUsername(u string) string {
	return strings.ToUpper(strings.TrimSpace(u))
}

// Matches reports whether the candidate pair equals the stored one. The
// username comparison ignores case.
func (c *Credentials) Matches(username, password string) bool {
	c.mu.RLock()
	stored, hash := c.username, c.passwordHash
	c.mu.RUnlock()

	if normalizeUsername(username) != stored {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, digest(password)) == nil
}

// Replace swaps both fields at once. The new hash is computed before the
// lock is taken, so a failure leaves the old pair in place.
func (c *Credentials) Replace(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword(digest(password), c.cost)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.username = normalizeUsername(username)
	c.passwordHash = hash
	c.mu.Unlock()
	return nil
}

func (c *Credentials) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

// digest fixes the bcrypt input at 64 bytes. bcrypt refuses anything past 72.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
