package recopipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askarn/go-recopipe/pkg/recopipe"
	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

func TestApplyDefaultIsIdentity(t *testing.T) {
	t.Parallel()

	logic := recopipe.NewLogic("forgot to override", nil)
	items := itemIDs(t, "vid1", "vid2", "vid3")

	got, err := logic.Apply(nil, items)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestLabel(t *testing.T) {
	t.Parallel()

	logic := recopipe.NewLogic("drop seen videos", nil)
	assert.Equal(t, "drop seen videos", logic.Label())
}

func TestApplyReceivesParameters(t *testing.T) {
	t.Parallel()

	logic := recopipe.NewLogic("drop blocked", func(params []model.Entry, items []model.ItemID) ([]model.ItemID, error) {
		blocked := make(map[model.ItemID]struct{})
		for _, entry := range params {
			if entry.Key != "blocked" {
				continue
			}
			ids, ok := entry.Data.([]string)
			if !ok {
				continue
			}
			for _, id := range ids {
				blocked[model.ItemID(id)] = struct{}{}
			}
		}

		out := make([]model.ItemID, 0, len(items))
		for _, item := range items {
			if _, ok := blocked[item]; !ok {
				out = append(out, item)
			}
		}

		return out, nil
	})

	params := []model.Entry{{Key: "blocked", Data: []string{"vid2"}}}
	got, err := logic.Apply(params, itemIDs(t, "vid1", "vid2", "vid3"))
	require.NoError(t, err)
	assert.Equal(t, itemIDs(t, "vid1", "vid3"), got)
}
