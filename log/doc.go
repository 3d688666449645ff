// Package log builds structured loggers on [charm.land/log/v2].
//
// A TUI owns the terminal, so loggers write to a file instead of stderr.
// [Config] integrates level, format, and file path with CLI flags via
// [github.com/spf13/pflag] and shell completion via [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	logger, err := cfg.NewLogger(logFile)
//
// [Tail] is an [io.Writer] that keeps the most recent log lines in memory so
// the TUI can surface them in its status area; combine it with the file via
// [io.MultiWriter]:
//
//	tail := log.NewTail(8)
//	logger, err := cfg.NewLogger(io.MultiWriter(logFile, tail))
package log
