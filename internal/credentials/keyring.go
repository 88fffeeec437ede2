package credentials

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/DengYiping/catlink-cli/internal/region"
)

// ServiceName is the fixed keyring service identifier shared by every
// region's record.
const ServiceName = "catlink-cli"

func recordKey(r region.Region) string {
	return "credentials:" + string(r)
}

// KeyringStore is a Store backed by the OS keyring.
type KeyringStore struct {
	ring keyring.Keyring
}

// OpenKeyring opens the default OS keyring backend for ServiceName.
func OpenKeyring() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &KeyringStore{ring: ring}, nil
}

// NewKeyringStore wraps an already-open keyring. Used by tests with the
// library's in-memory array backend.
func NewKeyringStore(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

func (s *KeyringStore) Put(r region.Region, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode credential record: %w", err)
	}
	err = s.ring.Set(keyring.Item{
		Key:   recordKey(r),
		Data:  data,
		Label: fmt.Sprintf("CatLink %s credentials", r),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *KeyringStore) Get(r region.Region) (Record, error) {
	item, err := s.ring.Get(recordKey(r))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var rec Record
	if err := json.Unmarshal(item.Data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode credential record for %s: %w", r, err)
	}
	return rec, nil
}

func (s *KeyringStore) Delete(r region.Region) error {
	err := s.ring.Remove(recordKey(r))
	if err == nil || errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func (s *KeyringStore) DeleteAll() error {
	for _, r := range region.All() {
		if err := s.Delete(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *KeyringStore) Regions() ([]region.Region, error) {
	var stored []region.Region
	for _, r := range region.All() {
		_, err := s.ring.Get(recordKey(r))
		if errors.Is(err, keyring.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		stored = append(stored, r)
	}
	return stored, nil
}
