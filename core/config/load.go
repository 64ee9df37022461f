package config

import (
	"errors"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory. A missing config
// file falls back to the embedded defaults so the interpreter runs
// without any setup.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	// The cd builtin changes the process working directory mid-session,
	// so the config directory has to be pinned up front.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return load(afero.NewBasePathFs(afero.NewOsFs(), abs))
}

func load(configFs afero.Fs) (*Configuration, error) {
	contents, err := afero.ReadFile(configFs, ConfigurationName)
	if errors.Is(err, fs.ErrNotExist) {
		out := defaultConfig()
		out.configFs = configFs
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	out.configFs = configFs

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// Initialize writes the default configuration into the directory,
// leaving an existing config file untouched.
func Initialize(path string, logger *log.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	return initialize(afero.NewBasePathFs(afero.NewOsFs(), abs), logger)
}

func initialize(configFs afero.Fs, logger *log.Logger) error {
	exists, err := afero.Exists(configFs, ConfigurationName)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("%s already exists, skipping", ConfigurationName)
		return nil
	}

	logger.Printf("creating %s", ConfigurationName)
	return afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0600)
}
