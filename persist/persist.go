package persist

import "errors"

// Gateway is the durable key-value collaborator the library snapshots to.
// Load reports ok=false when nothing is stored under the key. Failures are
// non-fatal to callers; the library logs and keeps going.
type Gateway interface {
	Load(key string) (blob []byte, ok bool, err error)
	Save(key string, blob []byte) error
}

var ErrUnavailable = errors.New("persistence unavailable")
