package core

// SecretHasher turns a plaintext credential into an opaque stored secret
type SecretHasher interface {
	Hash(secret string) (string, error)
}
