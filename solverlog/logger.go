// Package solverlog defines the logging seam the engine writes diagnostic
// output through. The interface is satisfied directly by
// *github.com/charmbracelet/log.Logger, which is what cmd/treedepth wires
// up; tests and library callers that want silence use Noop.
package solverlog

// Logger is the minimal structured-logging surface the engine needs.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type noop struct{}

func (noop) Debugf(string, ...interface{}) {}
func (noop) Infof(string, ...interface{})  {}
func (noop) Warnf(string, ...interface{})  {}

// Noop is a Logger that discards everything. It is the default when a
// caller builds an engine without explicitly supplying a Logger.
var Noop Logger = noop{}
