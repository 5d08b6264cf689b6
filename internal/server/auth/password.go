package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used outside of tests. At cost 12 a
// single hash takes a few hundred milliseconds on server hardware, which
// keeps offline guessing expensive.
const DefaultBcryptCost = 12

// HashPassword derives a salted bcrypt hash from a plaintext password. The
// salt and cost are embedded in the returned string. Used only at account
// provisioning, never in the request path.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. bcrypt performs the comparison in constant time, so the result leaks
// nothing about how many leading characters matched.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
