package cmd

import (
	"context"
	_ "embed"
	"errors"
	"os"
	"os/signal"
	"slices"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade/bridge"
	"github.com/lone-faerie/uomgrade/config"
	"github.com/lone-faerie/uomgrade/log"
)

var newClient = func(o *mqtt.ClientOptions) mqtt.Client {
	return mqtt.NewClient(o)
}

//go:embed help/serve.md
var serveHelp string

// NewCmdServe returns the [cobra.Command] used for running the grading bridge.
//
// Usage:
//
//	uomgrade serve [flags]
//
// Aliases:
//
//	serve, run, start
//
// Flags:
//
//	-b, --broker string     MQTT broker address
//	-p, --port int          MQTT broker port (default 1883)
//	    --username string   MQTT client username
//	    --password string   MQTT client password
//	    --cert string       MQTT TLS certificate file (PEM encoded)
//	    --key string        MQTT TLS private key file (PEM encoded)
//	-h, --help              help for serve
func NewCmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve [flags]",
		Aliases: []string{"run", "start"},
		Short:   "Run the grading bridge",
		Long:    serveHelp,
		Example: `  uomgrade serve --config config.yaml
  uomgrade serve --broker 127.0.0.1:1883 --username grader --password p@55w0rd`,
		GroupID: "commands",
		Args:    cobra.NoArgs,
		PreRun: func(_ *cobra.Command, _ []string) {
			log.Debug("MQTT broker", "addr", cfg.MQTT.Broker)
		},
		RunE: runServe,

		DisableFlagsInUseLine: true,
	}

	cmd.Flags().SortFlags = false
	addMQTTFlags(cmd)

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func watchConfig(ctx context.Context, cmd *cobra.Command, b *bridge.Bridge, paths []string) {
	err := config.Watch(ctx, func(c *config.Config) {
		if err := flagsToConfig(cmd, c); err != nil {
			log.Error("Invalid flags", err)
			return
		}
		if c.Tolerance.Profile != b.Profile() {
			b.SetProfile(c.Tolerance.Profile)
		}
	}, paths...)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Not watching config", err)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bridge.New(cfg,
		bridge.WithClient(newClient(cfg.MQTT.ClientOptions())),
		bridge.WithLogLevel(cfg.MQTT.LogLevel),
	)
	if err := b.Start(ctx); err != nil {
		log.Error("Not connected.", err)
		return &ExitError{err, 1}
	}
	defer func() {
		b.Stop()
		log.Info("Done")
	}()

	select {
	case <-b.Ready():
		if err := b.Error(); err != nil {
			return &ExitError{err, 1}
		}
	case <-ctx.Done():
		return nil
	}
	log.Info("Bridge ready", "topic", b.Topic("grade"), "tolerance", cfg.Tolerance)

	go watchConfig(ctx, cmd, b, slices.Clone(ConfigPath))

	select {
	case <-b.Done():
	case <-ctx.Done():
		log.Debug("Received signal")
	}
	return nil
}
