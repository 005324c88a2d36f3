// Package rsmtlog builds the structured logger shared by cmd/rsmtctl and
// netxml, modeled on allstar-nexus's zap.NewProduction() setup.
package rsmtlog

import "go.uber.org/zap"

// New returns a production zap.Logger, or a no-op logger if verbose is
// false. The CLI never fails to start because of a logging misconfiguration:
// zap.NewProduction's only failure mode is an unwritable default sink, which
// we fall back from silently rather than aborting a build.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
