package recopipe_test

import (
	"context"
	"testing"

	"github.com/askarn/go-recopipe/pkg/recopipe"
	"github.com/askarn/go-recopipe/pkg/recopipe/model"
)

func itemIDs(t *testing.T, ids ...string) []model.ItemID {
	t.Helper()
	items := make([]model.ItemID, 0, len(ids))
	for _, id := range ids {
		items = append(items, model.ItemID(id))
	}

	return items
}

func staticSource(t *testing.T, ids ...string) recopipe.ItemSource {
	t.Helper()
	items := itemIDs(t, ids...)

	return recopipe.ItemSourceFunc(func(ctx context.Context) ([]model.ItemID, error) {
		return items, nil
	})
}

// dropLogic removes every occurrence of victim from the collection.
func dropLogic(t *testing.T, label string, victim model.ItemID) *recopipe.Logic {
	t.Helper()

	return recopipe.NewLogic(label, func(params []model.Entry, items []model.ItemID) ([]model.ItemID, error) {
		out := make([]model.ItemID, 0, len(items))
		for _, item := range items {
			if item != victim {
				out = append(out, item)
			}
		}

		return out, nil
	})
}

// markerLogic appends its own label to the collection, making the
// application order observable.
func markerLogic(t *testing.T, label string) *recopipe.Logic {
	t.Helper()

	return recopipe.NewLogic(label, func(params []model.Entry, items []model.ItemID) ([]model.ItemID, error) {
		return append(items, model.ItemID(label)), nil
	})
}
