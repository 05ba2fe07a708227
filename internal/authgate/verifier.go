package authgate

import "crypto/subtle"

// SecretVerifier compares credentials against a single configured secret
// in constant time.
type SecretVerifier struct {
	secret []byte
}

// NewSecretVerifier creates a verifier for the given secret.
func NewSecretVerifier(secret string) *SecretVerifier {
	return &SecretVerifier{secret: []byte(secret)}
}

// Verify reports whether the credential matches the secret.
func (v *SecretVerifier) Verify(credential string) bool {
	return subtle.ConstantTimeCompare(v.secret, []byte(credential)) == 1
}

// DenyAllVerifier rejects every credential. It backs gates wired into
// flows that never authorize a sensitive action, so those flows need no
// secret configured.
type DenyAllVerifier struct{}

// Verify always fails.
func (DenyAllVerifier) Verify(string) bool { return false }
