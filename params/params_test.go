package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciimotion/params"
)

func TestStoreClamping(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		set      func(s *params.Store)
		expected params.Snapshot
	}{
		"width below minimum": {
			set:      func(s *params.Store) { s.SetWidth(3) },
			expected: params.Snapshot{Width: 20, Brightness: 0, Contrast: 1.0},
		},
		"width above maximum": {
			set:      func(s *params.Store) { s.SetWidth(9999) },
			expected: params.Snapshot{Width: 250, Brightness: 0, Contrast: 1.0},
		},
		"brightness in range": {
			set:      func(s *params.Store) { s.SetBrightness(-42) },
			expected: params.Snapshot{Width: 100, Brightness: -42, Contrast: 1.0},
		},
		"brightness above maximum": {
			set:      func(s *params.Store) { s.SetBrightness(500) },
			expected: params.Snapshot{Width: 100, Brightness: 100, Contrast: 1.0},
		},
		"contrast below minimum": {
			set:      func(s *params.Store) { s.SetContrast(0.0) },
			expected: params.Snapshot{Width: 100, Brightness: 0, Contrast: 0.1},
		},
		"adjust rides the limit": {
			set: func(s *params.Store) {
				s.SetWidth(params.MaxWidth)
				s.AdjustWidth(10)
			},
			expected: params.Snapshot{Width: 250, Brightness: 0, Contrast: 1.0},
		},
		"adjust contrast": {
			set:      func(s *params.Store) { s.AdjustContrast(0.5) },
			expected: params.Snapshot{Width: 100, Brightness: 0, Contrast: 1.5},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := params.NewStore(params.Snapshot{
				Width:      params.DefaultWidth,
				Brightness: params.DefaultBrightness,
				Contrast:   params.DefaultContrast,
			})
			tc.set(s)

			assert.Equal(t, tc.expected, s.Snapshot())
		})
	}
}

func TestSnapshotComparable(t *testing.T) {
	t.Parallel()

	a := params.Snapshot{Width: 100, Brightness: 10, Contrast: 1.0}
	b := params.Snapshot{Width: 100, Brightness: 10, Contrast: 1.0}
	c := params.Snapshot{Width: 100, Brightness: 20, Contrast: 1.0}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestConfigResolve(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		file     string
		args     []string
		expected params.Snapshot
	}{
		"defaults only": {
			expected: params.Snapshot{Width: 100, Brightness: 0, Contrast: 1.0},
		},
		"flags only": {
			args:     []string{"--width=80", "--brightness=25"},
			expected: params.Snapshot{Width: 80, Brightness: 25, Contrast: 1.0},
		},
		"file only": {
			file:     "width: 60\ncontrast: 2.0\n",
			expected: params.Snapshot{Width: 60, Brightness: 0, Contrast: 2.0},
		},
		"flag overrides file": {
			file:     "width: 60\nbrightness: 50\n",
			args:     []string{"--width=200"},
			expected: params.Snapshot{Width: 200, Brightness: 50, Contrast: 1.0},
		},
		"file values clamped": {
			file:     "width: 1000\n",
			expected: params.Snapshot{Width: 250, Brightness: 0, Contrast: 1.0},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := params.NewConfig()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)

			args := tc.args

			if tc.file != "" {
				path := filepath.Join(t.TempDir(), "params.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.file), 0o600))

				args = append(args, "--config="+path)
			}

			require.NoError(t, flags.Parse(args))

			snap, err := cfg.Resolve(flags)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, snap)
		})
	}
}

func TestConfigResolveBadFile(t *testing.T) {
	t.Parallel()

	cfg := params.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--config=/nonexistent/params.yaml"}))

	_, err := cfg.Resolve(flags)
	require.Error(t, err)
	require.ErrorIs(t, err, params.ErrBadConfig)
}
