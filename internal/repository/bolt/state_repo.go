package bolt

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"
)

// StateRepo хранит состояние в одном бакете файла bbolt.
type StateRepo struct {
	db     *bolt.DB
	bucket []byte
}

// NewStateRepo создаёт бакет, если его ещё нет.
func NewStateRepo(db *bolt.DB, bucket string) (*StateRepo, error) {
	name := []byte(bucket)

	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(name)
		return err
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &StateRepo{
		db:     db,
		bucket: name,
	}, nil
}

func (r *StateRepo) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte

	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(r.bucket).Get([]byte(key))
		if v == nil {
			return e.ErrStateNotFound
		}
		// v действителен только внутри транзакции
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return value, nil
}

func (r *StateRepo) Put(_ context.Context, key string, value []byte) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(r.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
