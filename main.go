package main

import (
	"fmt"
	"os"
)

const AppName = "muttwrap"

func main() {
	args := os.Args[1:]
	if wantsVersion(args) {
		fmt.Println(versionLine())
		Exit(ExitOk)
	}

	configPath, passthrough, err := splitArgs(args)
	if err != nil {
		Fatal(err)
	}

	var config *SMTPConfig
	if configPath != "" {
		config, err = LoadSMTPConfig(configPath)
		if err != nil {
			Fatal(err)
		}
	}

	// Hands the process over to mutt; only returns on failure.
	err = execMutt(muttCommand(config, passthrough))
	Fatal(err)
}
