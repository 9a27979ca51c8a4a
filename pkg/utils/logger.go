package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogger sets the global logrus level and formatter. Unknown levels
// fall back to info.
func ConfigureLogger(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
