package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// Encrypted wraps a Store and encrypts values with a fernet key before they
// reach the underlying store.
type Encrypted struct {
	inner Store
	key   *fernet.Key
}

// NewEncrypted decodes a base64 fernet key and wraps inner.
func NewEncrypted(inner Store, encodedKey string) (*Encrypted, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid fernet key: %w", err)
	}
	return &Encrypted{inner: inner, key: key}, nil
}

func (e *Encrypted) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	token, err := e.inner.Get(ctx, namespace, key)
	if err != nil {
		return nil, err
	}
	// ttl 0 disables the token age check; expiry is handled by Prune.
	plain := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{e.key})
	if plain == nil {
		return nil, fmt.Errorf("kvstore: cannot decrypt %s/%s", namespace, key)
	}
	return plain, nil
}

func (e *Encrypted) Set(ctx context.Context, namespace, key string, value []byte) error {
	token, err := fernet.EncryptAndSign(value, e.key)
	if err != nil {
		return fmt.Errorf("kvstore: encrypt %s/%s: %w", namespace, key, err)
	}
	return e.inner.Set(ctx, namespace, key, token)
}

func (e *Encrypted) Delete(ctx context.Context, namespace, key string) error {
	return e.inner.Delete(ctx, namespace, key)
}

func (e *Encrypted) Prune(ctx context.Context, namespace string, cutoff time.Time) (int64, error) {
	return e.inner.Prune(ctx, namespace, cutoff)
}
