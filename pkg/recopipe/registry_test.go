package recopipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarn/go-recopipe/pkg/recopipe"
	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

func TestRegisterKeepsOrder(t *testing.T) {
	t.Parallel()

	registry := recopipe.NewDataRegistry()
	registry.Register("first", []string{"1data1", "2data1", "3data1"})
	registry.Register("second", []string{"1data2", "2data2", "3data2"})

	expected := []model.Entry{
		{Key: "first", Data: []string{"1data1", "2data1", "3data1"}},
		{Key: "second", Data: []string{"1data2", "2data2", "3data2"}},
	}
	assert.Equal(t, expected, registry.Entries())
}

func TestRegisterDuplicateKeys(t *testing.T) {
	t.Parallel()

	registry := recopipe.NewDataRegistry()
	registry.Register("minimum rating", 3)
	registry.Register("minimum rating", 4)

	entries := registry.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.Entry{Key: "minimum rating", Data: 3}, entries[0])
	assert.Equal(t, model.Entry{Key: "minimum rating", Data: 4}, entries[1])
}

func TestRegisterProvider(t *testing.T) {
	t.Parallel()

	calls := 0
	registry := recopipe.NewDataRegistry()
	err := registry.RegisterProvider("blocked", func() (any, error) {
		calls++

		return []string{"vid2"}, nil
	})
	require.NoError(t, err)

	_ = registry.Entries()
	_ = registry.Entries()
	assert.Equal(t, 1, calls)

	entries := registry.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, model.Entry{Key: "blocked", Data: []string{"vid2"}}, entries[0])
}

func TestRegisterProviderNil(t *testing.T) {
	t.Parallel()

	registry := recopipe.NewDataRegistry()
	err := registry.RegisterProvider("blocked", nil)
	assert.ErrorIs(t, err, recopipe.ErrProviderMustBeSet)
}

func TestRegisterProviderError(t *testing.T) {
	t.Parallel()

	registry := recopipe.NewDataRegistry()
	err := registry.RegisterProvider("blocked", func() (any, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, registry.Entries())
}

func TestEntriesIsASnapshot(t *testing.T) {
	t.Parallel()

	registry := recopipe.NewDataRegistry()
	registry.Register("first", "data")

	entries := registry.Entries()
	entries[0] = model.Entry{Key: "mutated", Data: nil}

	fresh := registry.Entries()
	require.Len(t, fresh, 1)
	assert.Equal(t, model.Entry{Key: "first", Data: "data"}, fresh[0])
}
