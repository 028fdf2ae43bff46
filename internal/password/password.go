// Package password hashes and verifies user credentials with bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt hash of plaintext, safe to store.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. It has no side
// effects; the digest comparison inside bcrypt is constant time.
func Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
