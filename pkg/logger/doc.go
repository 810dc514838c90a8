// Package logger builds *slog.Logger values from functional options. It is
// the logging used by the debuglog tooling itself and the plumbing behind
// debuglog's slog bridge.
//
// New picks a base handler (text, JSON, or one supplied with WithHandler),
// attaches static attributes and wraps it in a context handler that runs
// any registered ContextExtractor on every record:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithVerbose(verbose),
//	    logger.WithAttr(logger.Component("validate")),
//	)
//	log.Info("scan finished", logger.Path(dir), logger.Count("violations", n))
//
// Helper constructors such as Error, Path and Count keep attribute names
// consistent across the tooling. Error and Errors return an empty Attr for
// nil errors, so they can be passed without a nil check.
package logger
