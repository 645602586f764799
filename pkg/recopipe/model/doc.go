// Package model provides the data structures shared across the recopipe packages.
// It defines the item and filter-parameter types threaded through a pipeline run,
// the description of a registered logic unit, and the option hook interface
// implemented by the drawer, measure and trace options.
package model
