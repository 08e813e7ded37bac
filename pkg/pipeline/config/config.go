// Package config loads pipeline settings from YAML and turns them into pipeline options.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-componentpipe/pkg/pipeline"
	"github.com/askiada/go-componentpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-componentpipe/pkg/pipeline/logger"
	"github.com/askiada/go-componentpipe/pkg/pipeline/measure"
	"github.com/askiada/go-componentpipe/pkg/pipeline/model"
)

// Config represents the settings of a pipeline.
type Config struct {
	// LogLevel is one of debug, info, warn, error or quiet.
	LogLevel string `yaml:"log_level"`
	// Measure records per stage durations.
	Measure bool `yaml:"measure"`
	// DrawFile, when set, receives a DOT drawing of the stage chain after every run.
	DrawFile string `yaml:"draw_file"`
	// Concurrency bounds the number of runs in flight in ProcessAll.
	Concurrency int `yaml:"concurrency"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel:    "info",
		Concurrency: 1,
	}
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to decode config")
	}

	if cfg.Concurrency < 1 {
		return cfg, errors.Errorf("concurrency must be greater than 0, got %d", cfg.Concurrency)
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), errors.Wrapf(err, "unable to read config %s", path)
	}

	return Parse(data)
}

// Options builds the pipeline options described by cfg. The returned Measure is nil unless
// cfg.Measure is set.
func (cfg Config) Options() ([]model.PipelineOption, measure.Measure) {
	var (
		opts []model.PipelineOption
		msr  measure.Measure
	)

	if cfg.Measure {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.PipelineMeasure(msr))
	}

	if cfg.DrawFile != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(cfg.DrawFile), msr))
	}

	level := logger.ParseLogLevel(cfg.LogLevel)
	if level != logger.LevelQuiet {
		opts = append(opts, logger.PipelineLogger(logger.NewConsole(level)))
	}

	return opts, msr
}

// NewPipeline creates a pipeline with the options described by cfg.
func (cfg Config) NewPipeline() (*pipeline.Pipeline, measure.Measure, error) {
	opts, msr := cfg.Options()

	pipe, err := pipeline.New(opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create pipeline")
	}

	return pipe, msr, nil
}
