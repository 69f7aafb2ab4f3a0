package auth

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	switch os.Getenv("APP_ENV") {
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	case "development", "":
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
