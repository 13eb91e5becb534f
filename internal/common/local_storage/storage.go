package localstorage

import (
	"encoding/json"
)

// LocalStorage keeps values for a single process across runs, e.g. writes still waiting to be sent.
type LocalStorage[T any] interface {
	// Get returns the zero value when key is not stored.
	Get(key string) (T, error)

	Set(key string, value T) error

	Delete(key string) error

	// ForEach walks the values in key order.
	ForEach(func(key string, value T) error) error

	Close() error
}

type (
	MarshalFunc func(v any) ([]byte, error)

	UnmarshalFunc func(data []byte, v any) error
)

var (
	Marshal   MarshalFunc   = json.Marshal
	Unmarshal UnmarshalFunc = json.Unmarshal
)
