package recopipe

import "github.com/pkg/errors"

var (
	ErrEngineMustBeSet   = errors.New("engine must be set")
	ErrSourceMustBeSet   = errors.New("source must be set")
	ErrRegistryMustBeSet = errors.New("registry must be set")
	ErrLogicMustBeSet    = errors.New("logic must be set")
	ErrProviderMustBeSet = errors.New("provider must be set")
)
