package bridge

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/uomgrade"
	"github.com/lone-faerie/uomgrade/log"
)

type Option func(*Bridge)

// WithClient sets the MQTT client used by the bridge instead of creating one
// from the config.
func WithClient(c mqtt.Client) Option {
	return func(b *Bridge) {
		b.client = c
	}
}

// WithGrader sets the grader used for requests.
func WithGrader(g *uomgrade.Grader) Option {
	return func(b *Bridge) {
		b.grader.Store(g)
	}
}

func WithTopicPrefix(prefix string) Option {
	return func(b *Bridge) {
		b.prefix = prefix
	}
}

// WithStatusTopic sets the topic "online" is published to once the bridge
// is ready. An empty topic disables the status message.
func WithStatusTopic(topic string) Option {
	return func(b *Bridge) {
		b.statusTopic = topic
		b.statusSet = true
	}
}

func WithQoS(qos byte) Option {
	return func(b *Bridge) {
		b.qos = qos
	}
}

// WithLogLevel directs the logging of the MQTT client package to the log
// package for every level at or above level.
func WithLogLevel(level log.Level) Option {
	return func(b *Bridge) {
		mqtt.ERROR, mqtt.CRITICAL = mqtt.NOOPLogger{}, mqtt.NOOPLogger{}
		mqtt.WARN, mqtt.DEBUG = mqtt.NOOPLogger{}, mqtt.NOOPLogger{}

		if level <= log.LevelError {
			mqtt.ERROR = log.ErrorLogger()
			mqtt.CRITICAL = log.ErrorLogger()
		}
		if level <= log.LevelWarn {
			mqtt.WARN = log.WarnLogger()
		}
		if level <= log.LevelDebug {
			mqtt.DEBUG = log.DebugLogger()
		}
	}
}
