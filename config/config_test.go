package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lone-faerie/uomgrade/config"
	"github.com/lone-faerie/uomgrade/config/secrets"
	"github.com/lone-faerie/uomgrade/log"
	"github.com/lone-faerie/uomgrade/tolerance"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.ProfileSingle, cfg.Tolerance.Name)
	assert.Equal(t, tolerance.Single, cfg.Tolerance.Profile)
	assert.Equal(t, "uomgrade", cfg.TopicPrefix)
	assert.Equal(t, "uomgrade/bridge/status", cfg.MQTT.StatusTopic)
	assert.Equal(t, log.LevelWarn, cfg.Log.Level)

	cfg.TopicPrefix = "changed"
	assert.Equal(t, "uomgrade", config.Default().TopicPrefix, "Default returned shared config")
}

func TestReadTolerance(t *testing.T) {
	var tests = []struct {
		in   string
		want config.ToleranceConfig
		fail bool
	}{
		{"tolerance: single", config.ToleranceConfig{Name: "single", Profile: tolerance.Single}, false},
		{"tolerance: round-trip", config.ToleranceConfig{Name: "round-trip", Profile: tolerance.RoundTrip}, false},
		{"tolerance: RoundTrip", config.ToleranceConfig{Name: "round-trip", Profile: tolerance.RoundTrip}, false},
		{"tolerance: {epsilon: 0.01, ulps: 4}", config.ToleranceConfig{Profile: tolerance.Profile{Epsilon: 0.01, ULPs: 4}}, false},
		{"tolerance: loose", config.ToleranceConfig{}, true},
		{"tolerance: {epsilon: -1}", config.ToleranceConfig{}, true},
		{"", config.DefaultTolerance, false},
	}
	for _, tt := range tests {
		cfg, err := config.Read(strings.NewReader(tt.in))
		if tt.fail {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, cfg.Tolerance, tt.in)
	}
}

func TestRead(t *testing.T) {
	t.Setenv("UOMGRADE_TEST_BROKER", "tcp://127.0.0.1:1883")
	cfg, err := config.Read(strings.NewReader(`
topic_prefix: grader
batch:
  workers: 3
mqtt:
  broker: $UOMGRADE_TEST_BROKER
  status_topic: ~/status
  qos: 1
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "grader", cfg.TopicPrefix)
	assert.Equal(t, 3, cfg.Batch.Workers)
	assert.Equal(t, "tcp://127.0.0.1:1883", cfg.MQTT.Broker)
	assert.Equal(t, "grader/status", cfg.MQTT.StatusTopic)
	assert.Equal(t, byte(1), cfg.MQTT.QoS)
	assert.Equal(t, log.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "grader/grade", cfg.Topic("grade"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("tolerance: round-trip\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("topic_prefix: second\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not: [yaml"), 0600))
	override := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(override, []byte("topic_prefix: third\n"), 0600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.ProfileRoundTrip, cfg.Tolerance.Name)
	assert.Equal(t, "second", cfg.TopicPrefix)

	cfg, err = config.Load(dir, override)
	require.NoError(t, err)
	assert.Equal(t, config.ProfileRoundTrip, cfg.Tolerance.Name)
	assert.Equal(t, "third", cfg.TopicPrefix)

	cfg, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(dir, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite(t *testing.T) {
	cfg := config.Default()
	cfg.Tolerance = config.ToleranceConfig{Profile: tolerance.Profile{Epsilon: 0.25, ULPs: 1}}

	var buf bytes.Buffer
	require.NoError(t, cfg.Write(&buf))

	got, err := config.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg.Tolerance, got.Tolerance)
	assert.Equal(t, cfg.Log, got.Log)
	assert.Equal(t, cfg.TopicPrefix, got.TopicPrefix)
}

func TestReplaceBase(t *testing.T) {
	var tests = []struct {
		base  string
		topic string
		want  string
	}{
		{"base", "~/topic/foo", "base/topic/foo"},
		{"base", "topic/foo/~", "topic/foo/base"},
		{"base", "~/topic/foo/~", "base/topic/foo/base"},
		{"base", "topic/~/foo", "topic/~/foo"},
	}
	for _, tt := range tests {
		got := config.ReplaceBase(tt.base, tt.topic)
		if got != tt.want {
			t.Errorf("%q: wanted %q, got %q", tt.topic, tt.want, got)
		}
	}
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	old := secrets.Dir
	secrets.Dir = dir
	t.Cleanup(func() { secrets.Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo"), []byte("Hello"), 0600))
	t.Setenv("BAZ", "env variable")

	var tests = []struct {
		input string
		want  string
	}{
		{"!secret foo", "Hello"},
		{"!secret missing", ""},
		{"$BAZ", "env variable"},
		{"${BAZ}!", "env variable!"},
		{"$UOMGRADE_NOT_A_VAR", ""},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		got := config.Expand(tt.input)
		if got != tt.want {
			t.Errorf("%q: wanted %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestMQTTClientOptions(t *testing.T) {
	cfg := config.Default()
	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.MQTT.Username = "grader"
	opts := cfg.MQTT.ClientOptions()

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "localhost:1883", opts.Servers[0].Host)
	assert.Equal(t, "grader", opts.Username)
	assert.True(t, opts.WillEnabled)
	assert.Equal(t, "uomgrade/bridge/status", opts.WillTopic)

	cfg.MQTT.BirthWillEnabled = false
	assert.False(t, cfg.MQTT.ClientOptions().WillEnabled)
}

func TestWatch(t *testing.T) {
	name := filepath.Join(t.TempDir(), "uomgrade.yaml")
	require.NoError(t, os.WriteFile(name, []byte("tolerance: single\n"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		}, name)
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Tolerance.Name != config.ProfileRoundTrip {
				continue
			}
			cancel()
			assert.ErrorIs(t, <-done, context.Canceled)
			return
		case <-tick.C:
			// The watcher may not be registered yet, so keep writing until
			// a reload is seen.
			require.NoError(t, os.WriteFile(name, []byte("tolerance: round-trip\n"), 0600))
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}
