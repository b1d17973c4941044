// Package storage keeps gift records in a pebble database keyed by KSUID.
package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/wondercard"
)

var (
	// ErrNotFound is returned when no gift has the requested id
	ErrNotFound = errors.New("gift not found")
	// ErrCorrupt is returned when a stored value cannot be a gift
	ErrCorrupt = errors.New("corrupt gift value")
)

var giftPrefix = []byte("gift/")

// GiftStore persists gift records. It is safe for concurrent use.
type GiftStore struct {
	db     *pebble.DB
	logger *zap.Logger
}

// Open opens or creates the store at path
func Open(path string, logger *zap.Logger) (*GiftStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gift store at %s: %w", path, err)
	}
	logger.Debug("opened gift store", zap.String("path", path))
	return &GiftStore{db: db, logger: logger}, nil
}

// ParseID parses the string form of a gift id
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("invalid gift id %q: %w", s, err)
	}
	return id, nil
}

// Create stores card under a new id
func (s *GiftStore) Create(card *wondercard.WC7) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.db.Set(key(id), encode(card), pebble.NoSync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store gift: %w", err)
	}
	s.logger.Debug("stored gift", zap.Stringer("id", id), zap.Int("card_id", card.CardID()))
	return id, nil
}

// Read loads the gift stored under id
func (s *GiftStore) Read(id ksuid.KSUID) (*wondercard.WC7, error) {
	data, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gift %s: %w", id, err)
	}
	defer closer.Close()

	return decode(data)
}

// Update replaces the gift stored under id
func (s *GiftStore) Update(id ksuid.KSUID, card *wondercard.WC7) error {
	if err := s.exists(id); err != nil {
		return err
	}
	if err := s.db.Set(key(id), encode(card), pebble.NoSync); err != nil {
		return fmt.Errorf("failed to update gift %s: %w", id, err)
	}
	return nil
}

// Delete removes the gift stored under id
func (s *GiftStore) Delete(id ksuid.KSUID) error {
	if err := s.exists(id); err != nil {
		return err
	}
	if err := s.db.Delete(key(id), pebble.NoSync); err != nil {
		return fmt.Errorf("failed to delete gift %s: %w", id, err)
	}
	return nil
}

// List returns every stored id, oldest first
func (s *GiftStore) List() ([]ksuid.KSUID, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: giftPrefix,
		UpperBound: prefixEnd(giftPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(bytes.TrimPrefix(iter.Key(), giftPrefix))
		if err != nil {
			s.logger.Warn("skipping malformed gift key", zap.Binary("key", iter.Key()))
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}
	return ids, nil
}

// Close flushes and closes the database
func (s *GiftStore) Close() error {
	if err := s.db.Flush(); err != nil {
		return fmt.Errorf("failed to flush gift store: %w", err)
	}
	return s.db.Close()
}

func (s *GiftStore) exists(id ksuid.KSUID) error {
	_, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to read gift %s: %w", id, err)
	}
	return closer.Close()
}

func key(id ksuid.KSUID) []byte {
	return append(append([]byte(nil), giftPrefix...), id.Bytes()...)
}

func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	end[len(end)-1]++
	return end
}
