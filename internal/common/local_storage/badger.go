package localstorage

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

type badgerStorage[T any] struct {
	db *badger.DB
}

type options struct {
	inMemory bool
}

type Option func(*options)

// WithInMemory keeps nothing on disk; dir is ignored.
func WithInMemory() Option {
	return func(o *options) { o.inMemory = true }
}

func NewBadgerStorage[T any](dir string, opts ...Option) (LocalStorage[T], error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	badgerOpts := badger.DefaultOptions(dir)
	if o.inMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create localstorage dir: %w", err)
	}
	badgerOpts.Logger = nil

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open localstorage: %w", err)
	}

	return &badgerStorage[T]{db: db}, nil
}

func (b *badgerStorage[T]) Get(key string) (T, error) {
	var (
		val    T
		rawVal []byte
	)
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		rawVal, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return val, fmt.Errorf("failed to get value from localstorage: %w", err)
	}
	if rawVal == nil {
		return val, nil
	}

	if err = Unmarshal(rawVal, &val); err != nil {
		return val, fmt.Errorf("failed to unmarshal value from localstorage: %w", err)
	}
	return val, nil
}

func (b *badgerStorage[T]) Set(key string, value T) error {
	rawVal, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), rawVal)
	})
	if err != nil {
		return fmt.Errorf("failed to set value to localstorage: %w", err)
	}
	return nil
}

func (b *badgerStorage[T]) Delete(key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete value from localstorage: %w", err)
	}
	return nil
}

func (b *badgerStorage[T]) Close() error {
	return b.db.Close()
}

func (b *badgerStorage[T]) ForEach(f func(key string, value T) error) error {
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			var val T
			if err = Unmarshal(v, &val); err != nil {
				return fmt.Errorf("failed to unmarshal value: %w", err)
			}
			if err = f(string(item.KeyCopy(nil)), val); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate over localstorage: %w", err)
	}
	return nil
}
