package main

import (
	"errors"
	"os"

	"github.com/lone-faerie/uomgrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Error(err)

		var exit *cmd.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}

		cmd.Usage()
		os.Exit(1)
	}
}
