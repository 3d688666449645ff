// Package profile adds optional CPU and heap profiling to the CLI.
//
// Register flags, start before the TUI runs, and stop after it exits:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	prof, err := cfg.Start()
//	defer prof.Stop()
package profile

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile  string
	HeapProfile string
}

// Config holds CLI flag values for profiling. Empty paths disable the
// corresponding profile.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags].
type Config struct {
	Flags       Flags
	CPUProfile  string
	HeapProfile string
}

// NewConfig returns a new [Config] with default flag names and profiling
// disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPUProfile:  "cpu-profile",
			HeapProfile: "heap-profile",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write heap profile to file")
}

// Session is a running profiling session. Create with [Config.Start].
type Session struct {
	cpuFile  *os.File
	heapPath string
}

// Start begins CPU profiling if enabled. Call [Session.Stop] when the
// program is done to finish the CPU profile and write the heap snapshot.
func (c *Config) Start() (*Session, error) {
	s := &Session{heapPath: c.HeapProfile}

	if c.CPUProfile == "" {
		return s, nil
	}

	f, err := os.Create(c.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("creating CPU profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("starting CPU profile: %w", err)
	}

	s.cpuFile = f

	return s, nil
}

// Stop finishes the CPU profile and writes the heap snapshot if enabled.
func (s *Session) Stop() error {
	if s.cpuFile != nil {
		pprof.StopCPUProfile()

		err := s.cpuFile.Close()
		if err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		s.cpuFile = nil
	}

	if s.heapPath == "" {
		return nil
	}

	f, err := os.Create(s.heapPath) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating heap profile: %w", err)
	}

	err = pprof.Lookup("heap").WriteTo(f, 0)
	if err != nil {
		_ = f.Close()

		return fmt.Errorf("writing heap profile: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("writing heap profile: %w", err)
	}

	return nil
}
