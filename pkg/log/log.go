// Package log configures the application logger.
package log

import (
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logE := logrus.NewEntry(logrus.New())
	return logE.WithFields(logrus.Fields{
		"lintdiff_version": version,
		"program":          "lintdiff",
	})
}

func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.Level = lvl
}

func SetColor(color string, logE *logrus.Entry) {
	switch color {
	case "", "auto":
		return
	case "always":
		logE.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors: true,
		})
	case "never":
		logE.Logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	default:
		logE.WithField("log_color", color).Error("log_color must be either auto, always, or never")
	}
}
