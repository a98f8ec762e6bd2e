package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade/config"
	"github.com/lone-faerie/uomgrade/internal/cleanup"
	"github.com/lone-faerie/uomgrade/log"
)

// Flags for the commands connecting to the broker
var (
	Broker   string // MQTT broker address
	Port     int    // MQTT broker port
	Username string // MQTT broker username
	Password string // MQTT broker password
	CertFile string // MQTT TLS certificate file (PEM encoded)
	KeyFile  string // MQTT TLS private key file (PEM encoded)
)

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/uomgrade`

func findConfig() {
	const defaultConfigFile = "uomgrade.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("UOMGRADE_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

func loadConfig(cmd *cobra.Command, _ []string) (err error) {
	log.SetLogLevel(log.Level(LogLevel))

	findConfig()
	cfg, err = config.Load(ConfigPath...)
	if err != nil {
		return
	}

	if err = flagsToConfig(cmd, cfg); err != nil {
		return
	}

	setLogHandler(cfg)
	log.Debug("Config loaded", "path", ConfigPath, "tolerance", cfg.Tolerance)
	return
}

func addMQTTFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&Broker, "broker", "b", "", "MQTT broker address")
	cmd.Flags().IntVarP(&Port, "port", "p", 1883, "MQTT broker port")
	cmd.Flags().StringVar(&Username, "username", "", "MQTT client username")
	cmd.Flags().StringVar(&Password, "password", "", "MQTT client password")
	cmd.Flags().StringVar(&CertFile, "cert", "", "MQTT TLS certificate file (PEM encoded)")
	cmd.Flags().StringVar(&KeyFile, "key", "", "MQTT TLS private key file (PEM encoded)")

	cmd.MarkFlagFilename("cert", "pem", "crt")
	cmd.MarkFlagFilename("key", "pem", "key")
}

func maybeWithPort(addr string, port int) string {
	var hasPort bool

	if last := addr[len(addr)-1]; '0' <= last && last <= '9' {
		for _, c := range addr {
			switch {
			case c == ':':
				hasPort = true
			case '0' <= c && c <= '9':
			default:
				hasPort = false
			}
		}
	}

	if hasPort || port < 0 {
		return addr
	}

	return addr + ":" + strconv.Itoa(port)
}

func flagsToConfig(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("log") {
		cfg.Log.Level = log.Level(LogLevel)
	}

	if Tolerance != "" {
		tc, err := config.ParseTolerance(Tolerance)
		if err != nil {
			return err
		}

		cfg.Tolerance = tc
	}

	if Broker != "" {
		cfg.MQTT.Broker = maybeWithPort(Broker, Port)
	}

	if Username != "" {
		cfg.MQTT.Username = Username
	}

	if Password != "" {
		cfg.MQTT.Password = Password
	}

	if CertFile != "" {
		cfg.MQTT.CertFile = CertFile
	}

	if KeyFile != "" {
		cfg.MQTT.KeyFile = KeyFile
	}

	return nil
}

func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetLogLevel(cfg.Log.Level)
		log.SetHandler(log.DiscardHandler)
		return
	default:
		f, err := os.OpenFile(cfg.Log.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			log.Error(
				"Unable to open log file, deferring to stderr",
				err,
			)

			break
		}

		w = f

		cleanup.Register(f.Close)
	}

	log.SetLogLevel(cfg.Log.Level)

	if w == nil {
		w = os.Stderr
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}
}
