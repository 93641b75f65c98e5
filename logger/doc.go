// Package logger provides structured logging for the call-analysis
// engine using zerolog.
//
// It supports JSON and console output, level configuration from the
// environment, and component-scoped loggers so each analysis stage
// tags its own decisions.
//
// # Usage
//
//	log := logger.NewFromEnv("callintel").WithComponent("outcome")
//	log.Debug("rule matched", logger.Fields("key", "VOICEMAIL"))
package logger
