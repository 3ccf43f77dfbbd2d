package helpers

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor used for all stored credentials.
const bcryptCost = 10

// HashPassword derives a bcrypt hash for storage; the plaintext is never kept.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword reports whether plain matches the stored hash.
func CompareHashAndPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
