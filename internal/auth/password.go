package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash of the plaintext. The salt is
// random per call, so hashing the same password twice yields different
// outputs; the plaintext itself is never stored.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. The bcrypt
// comparison runs in time independent of where the mismatch occurs.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
