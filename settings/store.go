// Package settings persists user preferences as string values under well known keys.
package settings

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/reusee/rsvp/rates"
)

// RateKey holds the last accepted words-per-minute value.
const RateKey = "rsvp-reader-wpm"

type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
}

// LoadRate reads the persisted rate. Missing, unreadable or out of range values
// report ok == false; err is set only for storage failures.
func LoadRate(store Store) (rate rates.Rate, ok bool, err error) {
	str, ok, err := store.Get(RateKey)
	if err != nil {
		return 0, false, fmt.Errorf("load rate: %w", err)
	}
	if !ok {
		return 0, false, nil
	}
	rate, err = rates.Parse(str)
	if err != nil {
		// written by hand or by an older version; fall back to other defaults
		return 0, false, nil
	}
	return rate, true, nil
}

func SaveRate(store Store, rate rates.Rate) error {
	if err := store.Set(RateKey, strconv.Itoa(int(rate))); err != nil {
		return fmt.Errorf("save rate: %w", err)
	}
	return nil
}

// Memory is an in process Store.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

var _ Store = new(Memory)

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
	}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
