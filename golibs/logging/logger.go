// Copyright 2024 The Skyschermer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package logging

import "sync/atomic"

type (
	// Logger exposes the methods used for application logging.
	Logger interface {
		// Warnf prints a Warn-level message.
		Warnf(format string, args ...interface{})
		// Infof prints an Info-level message.
		Infof(format string, args ...interface{})
		// Debugf prints a Debug-level message.
		Debugf(format string, args ...interface{})
		// Tracef prints a Trace-level message.
		Tracef(format string, args ...interface{})
		// Errorf prints an Error-level message.
		Errorf(format string, args ...interface{})
	}

	// Config allows overriding the current logger settings.
	Config struct {
		// NewLoggerF constructs a new Logger.
		NewLoggerF func(loggerName string) Logger
		// SetLevelF sets the logging level.
		SetLevelF func(lvl Level)
		// GetLevelF returns the current log level.
		GetLevelF func() Level
	}

	// Level is one of ERROR, WARN, INFO, DEBUG, or TRACE.
	Level int32
)

const (
	ERROR Level = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var loggerSettings atomic.Value

func init() {
	SetConfig(Config{NewLoggerF: stdNewLogger, SetLevelF: stdSetLevel, GetLevelF: stdGetLevel})
}

// NewLogger returns a new Logger for the caller name.
func NewLogger(loggerName string) Logger {
	return loggerSettings.Load().(Config).NewLoggerF(loggerName)
}

// SetLevel sets the logging level.
func SetLevel(lvl Level) {
	loggerSettings.Load().(Config).SetLevelF(lvl)
}

// GetLevel returns the current log level.
func GetLevel() Level {
	return loggerSettings.Load().(Config).GetLevelF()
}

// SetConfig overwrites the current logger settings.
func SetConfig(cfg Config) {
	loggerSettings.Store(cfg)
}
