/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a passive logging sink for pagefold.
//
// Logging never influences control flow: callers may leave every logger
// unset, in which case messages are dropped silently.
package log

import (
	"log"
	"os"
)

// Logger defines an interface for logging messages.
type Logger interface {
	Printf(format string, args ...interface{})
	Println(args ...interface{})
}

type logger struct {
	log Logger
}

func (l *logger) Printf(format string, args ...interface{}) {
	if l.log != nil {
		l.log.Printf(format, args...)
	}
}

func (l *logger) Println(args ...interface{}) {
	if l.log != nil {
		l.log.Println(args...)
	}
}

func (l *logger) Enabled() bool {
	return l.log != nil
}

// pagefold's 3 defined loggers.
var (
	Debug = &logger{}
	Info  = &logger{}
	Stats = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(l Logger) { Debug.log = l }

// SetInfoLogger sets the info logger.
func SetInfoLogger(l Logger) { Info.log = l }

// SetStatsLogger sets the stats logger.
func SetStatsLogger(l Logger) { Stats.log = l }

// InfoEnabled reports whether an info logger has been wired.
func InfoEnabled() bool { return Info.Enabled() }

// DebugEnabled reports whether a debug logger has been wired.
func DebugEnabled() bool { return Debug.Enabled() }

// SetDefaultDebugLogger wires Debug to stderr.
func SetDefaultDebugLogger() {
	SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime))
}

// SetDefaultInfoLogger wires Info to stderr.
func SetDefaultInfoLogger() {
	SetInfoLogger(log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime))
}

// SetDefaultStatsLogger wires Stats to stderr.
func SetDefaultStatsLogger() {
	SetStatsLogger(log.New(os.Stderr, "STATS: ", log.Ldate|log.Ltime))
}

// DisableAll unwires every logger.
func DisableAll() {
	Debug.log = nil
	Info.log = nil
	Stats.log = nil
}
