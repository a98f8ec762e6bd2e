package config

import (
	"crypto/tls"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/lone-faerie/uomgrade/log"
)

// MQTTConfig is the configuration for the MQTT client used by the grading
// bridge.
//
// See [mqtt.ClientOptions]
type MQTTConfig struct {
	// Broker is the URI of the broker in the form scheme://host:port where
	// "scheme" is one of "tcp", "ssl", or "ws".
	Broker string `yaml:"broker"`
	// ClientID is the (optional) client ID used when connecting to the broker.
	ClientID string `yaml:"client_id,omitempty"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// KeepAlive is the duration that the client should wait before pinging the broker.
	KeepAlive time.Duration `yaml:"keep_alive,omitempty"`
	// CertFile and KeyFile are the paths to the PEM-encoded TLS certificate
	// and private key. TLS is used only if both are set.
	CertFile string `yaml:"cert_file,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`
	// ConnectTimeout is the duration to wait when connecting to the broker.
	// A duration of 0 means the client will never time out.
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`
	// WriteTimeout is the duration that publishing a message may block for.
	// A duration of 0 means the client will never time out.
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`
	// QoS is the quality of service used for subscriptions and answers.
	QoS byte `yaml:"qos,omitempty"`
	// BirthWillEnabled indicates if "online" is published to StatusTopic
	// after connecting, with "offline" as the Last Will and Testament.
	BirthWillEnabled bool `yaml:"birth_lwt_enabled"`
	// StatusTopic is the topic of the birth and will messages. A leading
	// "~" is replaced with the topic prefix. The default is "~/bridge/status".
	StatusTopic string `yaml:"status_topic"`
	// LogLevel is the level at which the MQTT client package logs.
	LogLevel log.Level `yaml:"log_level"`

	tlsCert *tls.Certificate
}

var DefaultMQTT = MQTTConfig{
	Broker:           "$UOMGRADE_BROKER_ADDRESS",
	Username:         "$UOMGRADE_BROKER_USERNAME",
	Password:         "$UOMGRADE_BROKER_PASSWORD",
	BirthWillEnabled: true,
	StatusTopic:      "~/bridge/status",
	LogLevel:         log.LevelDisabled,
}

// ClientOptions returns cfg formatted as [mqtt.ClientOptions] to provide to
// [mqtt.NewClient].
func (cfg *MQTTConfig) ClientOptions() *mqtt.ClientOptions {
	o := mqtt.NewClientOptions()
	o.AddBroker(cfg.Broker)
	o.SetClientID(cfg.ClientID)
	o.SetUsername(cfg.Username).SetPassword(cfg.Password)
	o.SetResumeSubs(true)

	if cfg.KeepAlive > 0 {
		o.SetKeepAlive(cfg.KeepAlive)
	}

	if cfg.ConnectTimeout > 0 {
		o.SetConnectTimeout(cfg.ConnectTimeout)
	}

	if cfg.WriteTimeout > 0 {
		o.SetWriteTimeout(cfg.WriteTimeout)
	}

	if cfg.BirthWillEnabled {
		o.SetWill(cfg.StatusTopic, "offline", 1, true)
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		o.SetTLSConfig(&tls.Config{
			GetClientCertificate: cfg.getCertificate,
		})
	}

	return o
}

func (cfg *MQTTConfig) getCertificate(_ *tls.CertificateRequestInfo) (*tls.Certificate, error) {
	if cfg.tlsCert == nil {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		cfg.tlsCert = &cert
	}
	return cfg.tlsCert, nil
}
