/*
Package logger provides a structured logging solution for source-tree-stats.
It wraps uber-go/zap to provide a smaller interface with support for
verbosity levels and structured fields.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Walk started")
	log.Debug("Entering directory") // Only shown with verbosity >= 1
	log.Trace("Inspecting entry")   // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "component": "walker",
	    "path":      "/some/path",
	    "files":     42,
	}).Info("Directory walk completed")

Output Example (JSON, written to stderr):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Directory walk completed",
	    "component": "walker",
	    "path": "/some/path",
	    "files": 42
	}

Thread Safety:

All Logger methods are safe for concurrent use; the tool itself only logs
from a single goroutine.
*/
package logger
