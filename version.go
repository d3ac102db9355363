package main

import (
	"fmt"
	"os"
)

// Version is stamped at release time via -ldflags "-X main.Version=...".
var Version = "dev"

const versionEnv = "MUTTWRAP_VERSION"

func versionLine() string {
	if v := os.Getenv(versionEnv); v != "" {
		return v
	}
	return fmt.Sprintf("%s %s", AppName, Version)
}
