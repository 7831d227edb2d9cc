package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Pipeline      Pipeline            `yaml:"pipeline"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarization SummarizationConfig `yaml:"summarization"`
	Output        OutputConfig        `yaml:"output"`
	Watch         WatchConfig         `yaml:"watch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// Pipeline is the fixed per-run settings block. It is passed by value
// into the pipeline and never mutated after Validate.
type Pipeline struct {
	Model          ModelName `yaml:"model"`
	Language       string    `yaml:"language"`
	WordTimestamps bool      `yaml:"word_timestamps"`
	Verbose        bool      `yaml:"verbose"`
	ExportSegments bool      `yaml:"export_segments"`
	MaxChunkLength int       `yaml:"max_chunk_length"`
}

type TranscriptionConfig struct {
	Backend string        `yaml:"backend"`
	Whisper WhisperConfig `yaml:"whisper"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	FFmpegPath string `yaml:"ffmpeg_path"`
	ModelDir   string `yaml:"model_dir"`
	Threads    int    `yaml:"threads"`
	TempDir    string `yaml:"temp_dir"`
}

type OpenAIConfig struct {
	Model string `yaml:"model"`
}

type SummarizationConfig struct {
	Backend string       `yaml:"backend"`
	OpenAI  OpenAIConfig `yaml:"openai"`
	Gemini  GeminiConfig `yaml:"gemini"`
}

type GeminiConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type OutputConfig struct {
	Root     string `yaml:"root"`
	Docx     bool   `yaml:"docx"`
	Progress bool   `yaml:"progress"`
}

type WatchConfig struct {
	Enabled       bool   `yaml:"enabled"`
	InputDir      string `yaml:"input_dir"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

const (
	BackendWhisperCpp = "whispercpp"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"

	DefaultMaxChunkLength = 4000
)

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{
		Pipeline: Pipeline{
			Model:    ModelBaseEn,
			Language: "english",
		},
		Output: OutputConfig{Progress: true},
	}
	// Defaults only fill empty values, so this cannot fail.
	_ = cfg.Validate()
	return cfg
}

// TranscriptionModel names the speech model the selected backend runs.
func (c *Config) TranscriptionModel() string {
	if c.Transcription.Backend == BackendOpenAI {
		return c.Transcription.OpenAI.Model
	}
	return c.Pipeline.Model.String()
}

func (c *Config) Validate() error {
	if c.Pipeline.Model == "" {
		c.Pipeline.Model = ModelBaseEn
	}
	if !c.Pipeline.Model.Valid() {
		return fmt.Errorf("pipeline.model %q is not one of %s", c.Pipeline.Model, strings.Join(modelNames(), ", "))
	}
	if c.Pipeline.Language == "" {
		c.Pipeline.Language = "english"
	}
	if c.Pipeline.MaxChunkLength < 0 {
		return fmt.Errorf("pipeline.max_chunk_length must be positive")
	}
	if c.Pipeline.MaxChunkLength == 0 {
		c.Pipeline.MaxChunkLength = DefaultMaxChunkLength
	}

	switch c.Transcription.Backend {
	case "":
		c.Transcription.Backend = BackendWhisperCpp
	case BackendWhisperCpp, BackendOpenAI:
	default:
		return fmt.Errorf("transcription.backend %q is not supported", c.Transcription.Backend)
	}
	if c.Transcription.Whisper.BinaryPath == "" {
		c.Transcription.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Transcription.Whisper.FFmpegPath == "" {
		c.Transcription.Whisper.FFmpegPath = "ffmpeg"
	}
	if c.Transcription.Whisper.ModelDir == "" {
		c.Transcription.Whisper.ModelDir = "models"
	}
	if c.Transcription.Whisper.Threads == 0 {
		c.Transcription.Whisper.Threads = 4
	}
	if c.Transcription.OpenAI.Model == "" {
		c.Transcription.OpenAI.Model = "whisper-1"
	}

	switch c.Summarization.Backend {
	case "":
		c.Summarization.Backend = BackendOpenAI
	case BackendOpenAI, BackendGemini:
	default:
		return fmt.Errorf("summarization.backend %q is not supported", c.Summarization.Backend)
	}
	if c.Summarization.OpenAI.Model == "" {
		c.Summarization.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.Summarization.Gemini.Model == "" {
		c.Summarization.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Watch.Enabled && c.Watch.InputDir == "" {
		return fmt.Errorf("watch.input_dir is required when watch is enabled")
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
