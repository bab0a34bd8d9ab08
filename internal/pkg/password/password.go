package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from the plaintext. bcrypt generates a
// fresh random salt on every call, so two hashes of the same plaintext never
// match. cost is the bcrypt work factor; values outside bcrypt's supported
// range fall back to the default.
func Hash(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored bcrypt hash.
// bcrypt's comparison does not leak how much of the hash matched.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
