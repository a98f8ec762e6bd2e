// Package config provides the structures used for configuration.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lone-faerie/uomgrade/config/secrets"
	"github.com/lone-faerie/uomgrade/log"
)

// Config contains the configuration for grading, the MQTT bridge and
// logging. Config should be created with a call to [Default], [Read], or
// [Load] so that string values are expanded.
type Config struct {
	Tolerance   ToleranceConfig `yaml:"tolerance"`
	Batch       BatchConfig     `yaml:"batch,omitempty"`
	TopicPrefix string          `yaml:"topic_prefix"`
	MQTT        MQTTConfig      `yaml:"mqtt,omitempty"`
	Log         LogConfig       `yaml:"log,omitempty"`
}

// BatchConfig is the configuration for grading a file of cases.
type BatchConfig struct {
	// Workers is the number of cases graded concurrently. If Workers <= 0
	// then GOMAXPROCS is used.
	Workers int `yaml:"workers,omitempty"`
}

const DefaultTopicPrefix = "uomgrade"

func defaultConfig() *Config {
	return &Config{
		Tolerance:   DefaultTolerance,
		TopicPrefix: DefaultTopicPrefix,
		MQTT:        DefaultMQTT,
		Log:         DefaultLog,
	}
}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	cfg := defaultConfig()
	cfg.load()
	return cfg
}

// Read returns the Config parsed from the yaml encoded config from r.
func Read(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	cfg.load()
	return cfg, nil
}

func (cfg *Config) decode(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (cfg *Config) decodeFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return cfg.decode(f)
}

// configFiles returns name, or the yaml files in name if it is a directory.
func configFiles(name string) ([]string, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{name}, nil
	}
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := filepath.Ext(e.Name()); ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(name, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// Load returns the Config parsed from the given yaml files, in order, with
// later files overriding earlier ones. If no files are given or the first
// file does not exist, the default config is returned. If any of the given
// paths are directories, all of the yaml files in the directory are read.
func Load(file ...string) (*Config, error) {
	if len(file) == 0 {
		return Default(), nil
	}
	log.Info("Loading config", "path", file)
	if _, err := os.Stat(file[0]); err != nil {
		log.Debug("Using default config", "cause", err)
		return Default(), nil
	}
	cfg := defaultConfig()
	for _, name := range file {
		files, err := configFiles(name)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if err := cfg.decodeFile(f); err != nil {
				return nil, err
			}
		}
	}
	cfg.load()
	return cfg, nil
}

func (cfg *Config) load() {
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = DefaultTopicPrefix
	}
	cfg.MQTT.Broker = Expand(cfg.MQTT.Broker)
	cfg.MQTT.ClientID = Expand(cfg.MQTT.ClientID)
	cfg.MQTT.Username = Expand(cfg.MQTT.Username)
	cfg.MQTT.Password = Expand(cfg.MQTT.Password)
	cfg.MQTT.CertFile = Expand(cfg.MQTT.CertFile)
	cfg.MQTT.KeyFile = Expand(cfg.MQTT.KeyFile)
	cfg.MQTT.StatusTopic = ReplaceBase(cfg.TopicPrefix, Expand(cfg.MQTT.StatusTopic))
	cfg.Log.Output = Expand(cfg.Log.Output)
	log.Debug("Config loaded", "tolerance", cfg.Tolerance, "topic_prefix", cfg.TopicPrefix)
}

// Topic returns the topic name under the topic prefix of cfg.
func (cfg *Config) Topic(name string) string {
	return cfg.TopicPrefix + "/" + name
}

// Expand replaces ${var} or $var in s according to the values of
// the current environment variables, and replaces !secret var according
// to the file at /run/secrets/<var>.
func Expand(s string) string {
	if secret, ok := secrets.CutPrefix(s); ok {
		return secrets.MustRead(secret, "")
	}
	return os.ExpandEnv(s)
}

// ReplaceBase replaces a leading "~/" or trailing "/~" in topic with base.
func ReplaceBase(base, topic string) string {
	if s, ok := strings.CutPrefix(topic, "~/"); ok {
		topic = base + "/" + s
	}
	if s, ok := strings.CutSuffix(topic, "/~"); ok {
		topic = s + "/" + base
	}
	return topic
}

// Write writes the yaml encoding of cfg to w.
func (cfg *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	enc.SetIndent(2)
	return enc.Encode(cfg)
}
