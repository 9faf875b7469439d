package logger

import (
	"github.com/dparity/draid/internal/config"
	"github.com/sirupsen/logrus"
)

// InitLogger sets logrus' global level and formatter for the process.
// level is normally one of the config.LogLevel* strings (empty means
// info); any other value is handed to logrus.ParseLevel, and a value it
// cannot parse falls back to info.
func InitLogger(level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch level {
	case config.LogLevelDebug:
		logrus.SetLevel(logrus.DebugLevel)
	case config.LogLevelWarning:
		logrus.SetLevel(logrus.WarnLevel)
	case config.LogLevelError:
		logrus.SetLevel(logrus.ErrorLevel)
	case config.LogLevelInfo, "":
		logrus.SetLevel(logrus.InfoLevel)
	default:
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.SetLevel(logrus.InfoLevel)
			return nil
		}
		logrus.SetLevel(lvl)
	}

	return nil
}
