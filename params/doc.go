// Package params holds the live transformation parameters (render width,
// brightness, contrast) and produces immutable [Snapshot] values for
// asynchronous conversion requests.
//
// The live [Store] is mutated only by user input handlers on the event loop.
// Every outgoing request captures a [Snapshot]; because snapshots are plain
// comparable values they double as staleness tags for preview responses.
//
// [Config] integrates with CLI flags via [github.com/spf13/pflag] and an
// optional YAML defaults file parsed with [github.com/goccy/go-yaml]:
//
//	cfg := params.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	// after flag parsing:
//	snap, err := cfg.Resolve(rootCmd.Flags())
package params
