package auth

import "golang.org/x/crypto/bcrypt"

const MinPasswordLength = 6

// HashPassword produces a salted bcrypt digest. The salt is generated per
// call, so hashing the same plaintext twice yields different digests.
func HashPassword(plain string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest
// is a mismatch, not an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
