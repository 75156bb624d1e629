package emulator

import (
	log "github.com/sirupsen/logrus"
)

// loggerOr falls back to the standard logger for a zero value emulator.
func loggerOr(logger log.FieldLogger) log.FieldLogger {
	if logger == nil {
		return log.StandardLogger()
	}
	return logger
}
