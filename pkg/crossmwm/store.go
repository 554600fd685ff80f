package crossmwm

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/organicmaps/organicmaps-sub003/pkg/datastructure"
)

var ErrConnectorNotFound = errors.New("connector not found")

// Store keeps encoded connectors in pebble, one key per mwm.
type Store struct {
	db *pebble.DB
}

// OpenStore opens the pebble db at dir. inMemory keeps everything in a memory fs (tests).
func OpenStore(dir string, inMemory bool) (*Store, error) {
	opts := &pebble.Options{}
	if inMemory {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open connector store %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func connectorKey(mwmID datastructure.NumMwmID) []byte {
	return []byte(fmt.Sprintf("connector/%05d", mwmID))
}

func (s *Store) Put(c *Connector) error {
	val, err := EncodeConnector(c)
	if err != nil {
		return err
	}
	return s.db.Set(connectorKey(c.MwmID), val, pebble.Sync)
}

// PutBatch writes all connectors in one pebble batch.
func (s *Store) PutBatch(connectors []*Connector) error {
	batch := s.db.NewBatch()
	defer batch.Close()
	for _, c := range connectors {
		val, err := EncodeConnector(c)
		if err != nil {
			return err
		}
		if err := batch.Set(connectorKey(c.MwmID), val, nil); err != nil {
			return fmt.Errorf("batch connector %d: %w", c.MwmID, err)
		}
	}
	return batch.Commit(pebble.Sync)
}

func (s *Store) Get(mwmID datastructure.NumMwmID) (*Connector, error) {
	val, closer, err := s.db.Get(connectorKey(mwmID))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: mwm %d", ErrConnectorNotFound, mwmID)
	}
	if err != nil {
		return nil, fmt.Errorf("get connector %d: %w", mwmID, err)
	}
	defer closer.Close()
	// val is only valid until closer is closed, DecodeConnector copies what it keeps.
	return DecodeConnector(val)
}

func (s *Store) Close() error {
	return s.db.Close()
}
