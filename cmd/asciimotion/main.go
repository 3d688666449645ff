// Command asciimotion plays an animated GIF as live ASCII art in the
// terminal.
//
// The conversion pipeline re-renders while width, brightness, and contrast
// are adjusted interactively: each edit gets an immediate single-frame
// refresh, and a full re-conversion of every frame follows once the edits go
// quiet. Playback runs on its own clock and yields to edits instead of
// racing them.
//
// # Usage
//
//	asciimotion [flags] <gif>
//
// # Keys
//
//	space        pause / resume playback
//	left/right   step one frame
//	+ / -        render width
//	] / [        brightness
//	} / {        contrast
//	e            export frames to a text file
//	q            quit
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/asciimotion/ascii"
	"go.jacobcolvin.com/asciimotion/log"
	"go.jacobcolvin.com/asciimotion/params"
	"go.jacobcolvin.com/asciimotion/profile"
	"go.jacobcolvin.com/asciimotion/version"
)

func main() {
	paramsCfg := params.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var exportPath string

	rootCmd := &cobra.Command{
		Use:   "asciimotion [flags] <gif>",
		Short: "Play an animated GIF as ASCII art in the terminal",
		Long: `asciimotion converts an animated GIF to ASCII glyphs and plays it in the
terminal. Width, brightness, and contrast are adjustable while playback runs;
the converted frames can be exported to a text file.`,
		Args:          cobra.ExactArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := paramsCfg.Resolve(cmd.Flags())
			if err != nil {
				return err
			}

			return run(args[0], exportPath, snap, logCfg, profCfg)
		},
	}

	paramsCfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	profCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVarP(&exportPath, "output", "o", "",
		"export path for the e key (default <gif>.txt)")

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(source, exportPath string, snap params.Snapshot, logCfg *log.Config, profCfg *profile.Config) error {
	prof, err := profCfg.Start()
	if err != nil {
		return err
	}

	defer func() {
		stopErr := prof.Stop()
		if stopErr != nil {
			fmt.Fprintf(os.Stderr, "stopping profiler: %v\n", stopErr)
		}
	}()

	tail := log.NewTail(8)
	logWriter := io.Writer(tail)

	if logCfg.File != "" {
		f, openErr := os.OpenFile(logCfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // Log path from CLI flag is expected.
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}

		defer func() {
			closeErr := f.Close()
			if closeErr != nil {
				fmt.Fprintf(os.Stderr, "closing log file: %v\n", closeErr)
			}
		}()

		logWriter = io.MultiWriter(f, tail)
	}

	logger, err := logCfg.NewLogger(logWriter)
	if err != nil {
		return err
	}

	if exportPath == "" {
		exportPath = strings.TrimSuffix(source, filepath.Ext(source)) + ".txt"
	}

	m := newModel(ascii.NewService(), logger, tail, snap, source, exportPath)

	// The first WindowSizeMsg can trail the initial render; seed the
	// viewport from the terminal when one is attached.
	w, h, termErr := term.GetSize(int(os.Stdout.Fd()))
	if termErr == nil {
		m.viewportW = w
		m.viewportH = h
	}

	logger.Info("starting", "source", source, "export", exportPath)

	p := tea.NewProgram(m)

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
