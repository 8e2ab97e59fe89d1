package utils

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging sets up logging level and format based on env variables.
func ConfigureLogging() {
	initLogLevel()
	initLogStyle()
}

func initLogLevel() {
	levelStr := Getenv("LOG_LEVEL", "info")
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func initLogStyle() {
	switch Getenv("LOG_STYLE", "plain") {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)
}

// Log creates a logrus entry from interleaved key-value pairs,
// e.g. utils.Log("count", 5, "err", err.Error()).Info("deleted")
func Log(args ...interface{}) *log.Entry {
	fields, _ := processArgs(args...)
	return log.WithFields(fields)
}

// split trailing message from key-value pairs
func processArgs(args ...interface{}) (log.Fields, string) {
	nArgs := len(args)
	msg := ""
	if nArgs%2 == 1 {
		msg = fmt.Sprint(args[nArgs-1])
		nArgs--
	}

	fields := log.Fields{}
	for i := 0; i < nArgs; i += 2 {
		fields[fmt.Sprint(args[i])] = args[i+1]
	}
	return fields, msg
}

func logLevel(level log.Level, args ...interface{}) {
	if !log.IsLevelEnabled(level) {
		return
	}
	fields, msg := processArgs(args...)
	log.WithFields(fields).Log(level, msg)
}

func LogTrace(args ...interface{}) {
	logLevel(log.TraceLevel, args...)
}

func LogDebug(args ...interface{}) {
	logLevel(log.DebugLevel, args...)
}

func LogInfo(args ...interface{}) {
	logLevel(log.InfoLevel, args...)
}

func LogWarn(args ...interface{}) {
	logLevel(log.WarnLevel, args...)
}

func LogError(args ...interface{}) {
	logLevel(log.ErrorLevel, args...)
}

func LogFatal(args ...interface{}) {
	fields, msg := processArgs(args...)
	log.WithFields(fields).Fatal(msg)
}
