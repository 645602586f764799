// Package recopipe provides a plugin pipeline for filtering recommendation feeds.
//
// The recopipe package is built around three pieces. A DataRegistry holds named
// filter-parameter datasets in registration order. An Engine holds an ordered list
// of logic units and applies them as a strict left-to-right reduction over an item
// collection: each unit receives the output of the previous one, so registration
// order is execution order. A Coordinator drives one full run, gathering the item
// collection and the filter parameters concurrently before feeding the pair into
// the engine.
//
// New filtering rules are added by registering logic units and new filter
// parameters by registering datasets; the orchestration code never changes. A unit
// constructed without a transform behaves as the identity, so an incomplete plugin
// is a safe no-op rather than an error.
//
// The pipeline stops on the first encountered error, whether it happens while
// gathering inputs or inside a logic unit, and the error is handed back to the
// caller without retries. Cross-cutting concerns such as tracing item snapshots,
// measuring per-unit timings and drawing the pipeline topology are installed as
// options and stay out of the execution path when absent.
package recopipe
