package clients

import (
	"os"
	"path/filepath"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
	bolt "go.etcd.io/bbolt"
)

// NewBoltClient открывает файл bbolt, создавая каталог при необходимости.
func NewBoltClient(cfg *cfg.BoltCfg) (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.OpenTimeout})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
