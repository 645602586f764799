package recopipe

import "github.com/askarn/go-recopipe/pkg/recopipe/model"

// Transform inspects the filter parameters and the current item
// collection and returns the collection handed to the next unit.
type Transform func(params []model.Entry, items []model.ItemID) ([]model.ItemID, error)

// Logic is one transform step of the pipeline. A Logic is immutable
// after construction; its behaviour is fixed by the transform supplied
// to NewLogic.
type Logic struct {
	details   *model.LogicInfo
	transform Transform
}

// NewLogic creates a logic unit. The label is diagnostic only. A nil
// transform yields the identity unit, so a plugin that supplies no
// transform is a safe no-op rather than an error.
func NewLogic(label string, transform Transform) *Logic {
	return &Logic{
		details:   &model.LogicInfo{Label: label},
		transform: transform,
	}
}

// Label returns the diagnostic label.
func (l *Logic) Label() string {
	return l.details.Label
}

// Apply runs the transform on items. The identity default returns
// items unchanged.
func (l *Logic) Apply(params []model.Entry, items []model.ItemID) ([]model.ItemID, error) {
	if l.transform == nil {
		return items, nil
	}

	return l.transform(params, items)
}
