package aggregations

import "github.com/go-kit/log"

// BuildContext is passed through the tree during the build step. It carries
// no aggregation state of its own; builders only forward it to their
// sub-aggregations.
type BuildContext struct {
	logger log.Logger
}

// NewBuildContext creates a build context with the given logger. A nil
// logger is replaced with a nop logger.
func NewBuildContext(logger log.Logger) *BuildContext {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &BuildContext{logger: logger}
}

// Logger returns the context's logger, or a nop logger for a nil context.
func (c *BuildContext) Logger() log.Logger {
	if c == nil || c.logger == nil {
		return log.NewNopLogger()
	}
	return c.logger
}
