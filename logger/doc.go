// Package logger provides colored, tag-annotated console logging on top of
// zerolog.
//
// Handles are named loggers cached by a Registry beneath a single root name
// ("ergo" unless ERGOLOG_DEFAULT_LOGGER says otherwise). Asking for the same
// name twice returns the same *Handle, and handles resolve child names
// relative to themselves:
//
//	db := logger.Get("db")        // ergo.db
//	pool := db.Get("pool")        // ergo.db.pool
//	same := logger.Get("db.pool") // same handle as pool
//
// Every record carries the tags active on the tag stack at the moment it is
// emitted:
//
//	defer logger.Tag("import").With("file", name).Enter().Exit()
//	logger.Info("started") // [INFO    ] ergo [import, file=a.csv] (main.go:12) started
//
// # Configuration
//
//	ERGOLOG_DEFAULT_LOGGER  root logger name (default "ergo")
//	ERGOLOG_NO_COLORS       disable ANSI colors
//	ERGOLOG_NO_TIME         omit timestamps
//	ERGOLOG_LEVEL           minimum level (default "debug")
//	ERGOLOG_OUTPUT          stdout or stderr
package logger
