package json

import (
	"path/filepath"

	"github.com/drakos74/load-profiles/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores every key as a separate json file.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

// BlobShard creates blob storages for the table under the given root dir.
func BlobShard(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(table, shard, false).WithRoot(root), nil
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.table, s.shard)
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Info().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.table, s.shard), k.Path(), value)
}

// NewJsonBlob creates a blob storage under the default dir.
// table has the same schema
// shard is a logical split
func NewJsonBlob(table, shard string, debug bool) *BlobStorage {
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  storage.DefaultDir,
		debug: debug,
	}
}

// WithRoot moves the storage under the given root dir.
func (s *BlobStorage) WithRoot(root string) *BlobStorage {
	s.path = root
	return s
}
