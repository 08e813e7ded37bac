package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-componentpipe/pkg/component"
	"github.com/askiada/go-componentpipe/pkg/pipeline"
	"github.com/askiada/go-componentpipe/pkg/pipeline/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.False(t, cfg.Measure)
	assert.Empty(t, cfg.DrawFile)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in          string
		expected    config.Config
		expectedErr bool
	}{
		"empty": {
			in:       "",
			expected: config.Defaults(),
		},
		"full": {
			in: "log_level: debug\nmeasure: true\ndraw_file: out.dot\nconcurrency: 8\n",
			expected: config.Config{
				LogLevel:    "debug",
				Measure:     true,
				DrawFile:    "out.dot",
				Concurrency: 8,
			},
		},
		"partial": {
			in: "measure: true\n",
			expected: config.Config{
				LogLevel:    "info",
				Measure:     true,
				Concurrency: 1,
			},
		},
		"invalid yaml":        {in: "measure: [", expectedErr: true},
		"invalid concurrency": {in: "concurrency: 0", expectedErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(tc.in))
			if tc.expectedErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewPipelineFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	drawFile := filepath.Join(dir, "pipeline.dot")
	cfgFile := filepath.Join(dir, "pipeline.yaml")
	content := "log_level: quiet\nmeasure: true\ndraw_file: " + drawFile + "\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

	cfg, err := config.LoadFromFile(cfgFile)
	require.NoError(t, err)

	opts, _ := cfg.Options()
	assert.Len(t, opts, 2)

	pipe, msr, err := cfg.NewPipeline()
	require.NoError(t, err)
	require.NotNil(t, msr)

	require.NoError(t, pipe.PushStage("noop", pipeline.Mutation(func(*component.Container) {})))
	pipe.SetInput(component.NewContainer())

	_, err = pipe.Process()
	require.NoError(t, err)

	assert.Equal(t, int64(1), msr.GetMetric("noop").Total())

	drawing, err := os.ReadFile(drawFile)
	require.NoError(t, err)
	assert.Contains(t, string(drawing), `"start" -> "noop"`)
}

func TestOptionsWithoutMeasure(t *testing.T) {
	t.Parallel()

	opts, msr := config.Defaults().Options()
	assert.Nil(t, msr)
	assert.Len(t, opts, 1)
}
