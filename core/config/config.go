package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/josephlewis42/lsh/core/history"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the name of the config file in the config
// directory.
const ConfigurationName = "config.yaml"

// Configuration holds the interpreter's ambient settings. The core loop
// works with the embedded defaults when no file is present.
type Configuration struct {
	configFs afero.Fs

	// Prompt is written before each command is read.
	Prompt string `json:"prompt" validate:"required"`
	// HistoryFile is the command history file, relative to the config
	// directory.
	HistoryFile string `json:"history_file" validate:"required"`
	// EventLog is the newline delimited JSON event log, relative to the
	// config directory. Empty disables event logging.
	EventLog string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewOsFs()
	}
	return c.configFs
}

// HistoryStore opens the history sink backed by the config directory.
func (c *Configuration) HistoryStore() *history.FileStore {
	return history.NewFileStore(c.fs(), c.HistoryFile)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
