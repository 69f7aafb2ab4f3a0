package controllers

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
