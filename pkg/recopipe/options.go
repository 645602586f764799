package recopipe

// CoordinatorOption configures a coordinator.
type CoordinatorOption func(c *Coordinator)

// WithPresenter sets the collaborator that receives the final item
// collection of a successful run.
func WithPresenter(presenter Presenter) CoordinatorOption {
	return func(c *Coordinator) {
		c.presenter = presenter
	}
}
