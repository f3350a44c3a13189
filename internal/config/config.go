package config

import (
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
)

const defaultTimezone = "America/Sao_Paulo"

var (
	Logger   = logrus.New()
	Location = time.UTC
)

// Init configures the shared logger and application timezone from the environment.
func Init() {
	Logger.SetOutput(os.Stdout)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		Logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(Getenv("LOG_LEVEL", "info"))
	if err != nil {
		Logger.WithError(err).Warn("Invalid LOG_LEVEL, falling back to info")
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)

	tz := Getenv("APP_TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		Logger.WithError(err).Warnf("Unknown timezone %q, using UTC", tz)
		loc = time.UTC
	}
	Location = loc
}

func Getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
