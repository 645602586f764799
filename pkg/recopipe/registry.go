package recopipe

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

// DataProvider returns one filter-parameter dataset. Providers are
// called exactly once, when they are registered.
type DataProvider func() (any, error)

// DataRegistry stores named filter-parameter datasets in registration
// order. The registry appends rather than keying by map, so
// registering the same key twice keeps both entries.
type DataRegistry struct {
	mu      sync.Mutex
	entries []model.Entry
}

// NewDataRegistry creates an empty registry.
func NewDataRegistry() *DataRegistry {
	return &DataRegistry{}
}

// Register appends a new entry. It never fails and never merges
// duplicate keys.
func (r *DataRegistry) Register(key string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, model.Entry{Key: key, Data: data})
}

// RegisterProvider invokes provider once and registers its result
// under key.
func (r *DataRegistry) RegisterProvider(key string, provider DataProvider) error {
	if provider == nil {
		return ErrProviderMustBeSet
	}

	data, err := provider()
	if err != nil {
		return errors.Wrapf(err, "unable to provide filter data %q", key)
	}
	r.Register(key, data)

	return nil
}

// Entries returns a snapshot of all entries in registration order.
// Callers must treat the entry data as read-only.
func (r *DataRegistry) Entries() []model.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Entry, len(r.entries))
	copy(out, r.entries)

	return out
}
