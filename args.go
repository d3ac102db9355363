package main

const (
	versionFlag = "-V"
	smtpFlag    = "--smtp"
	optionsEnd  = "--"
)

// wantsVersion reports whether the version query flag appears anywhere
// in args. The scan runs before any other argument handling and does
// not honor the end-of-options marker.
func wantsVersion(args []string) bool {
	for _, arg := range args {
		if arg == versionFlag {
			return true
		}
	}
	return false
}

// splitArgs separates the wrapper-owned --smtp option from the
// arguments forwarded to mutt. Everything from the end-of-options
// marker onward is forwarded verbatim, further --smtp tokens included.
// A repeated --smtp overwrites the earlier path; the last one wins.
func splitArgs(args []string) (string, []string, error) {
	var configPath string
	passthrough := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == optionsEnd {
			passthrough = append(passthrough, args[i:]...)
			break
		}
		if arg == smtpFlag {
			if i+1 >= len(args) || args[i+1] == "" {
				return "", nil, Fatalf(ExitConfig, "%s requires a configuration file argument", smtpFlag)
			}
			configPath = args[i+1]
			i++
			continue
		}
		passthrough = append(passthrough, arg)
	}
	return configPath, passthrough, nil
}
