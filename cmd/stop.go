package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lone-faerie/uomgrade/log"
)

// NewCmdStop returns the [cobra.Command] used for stopping a running bridge
// by publishing to its stop topic.
//
// Usage:
//
//	uomgrade stop [flags]
//
// Flags:
//
//	-b, --broker string     MQTT broker address
//	-p, --port int          MQTT broker port (default 1883)
//	    --username string   MQTT client username
//	    --password string   MQTT client password
//	    --cert string       MQTT TLS certificate file (PEM encoded)
//	    --key string        MQTT TLS private key file (PEM encoded)
//	-h, --help              help for stop
func NewCmdStop() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stop [flags]",
		Short:   "Stop running bridge",
		GroupID: "commands",
		Args:    cobra.NoArgs,
		RunE:    runStop,

		DisableFlagsInUseLine: true,
	}

	cmd.Flags().SortFlags = false
	addMQTTFlags(cmd)

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func runStop(cmd *cobra.Command, _ []string) error {
	// The stopping client must not publish the bridge's will.
	cfg.MQTT.BirthWillEnabled = false

	client := newClient(cfg.MQTT.ClientOptions())
	t := client.Connect()
	t.Wait()
	if err := t.Error(); err != nil {
		return &ExitError{err, 1}
	}
	defer client.Disconnect(500)

	topic := cfg.Topic("bridge/stop")
	log.Debug("Stopping bridge", "topic", topic)

	t = client.Publish(topic, 1, false, []byte{})
	t.Wait()
	if err := t.Error(); err != nil {
		return &ExitError{err, 1}
	}
	return nil
}
