// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elog

import (
	"github.com/sirupsen/logrus"
)

// Fields is a set of structured key/value pairs attached to a log
// entry.
type Fields logrus.Fields

// Entry is a module-tagged log entry builder. Unlike a bare
// *logrus.Entry, a zero-value Entry is safe to use: WithField and the
// level methods never need a prior call to obtain one.
type Entry struct {
	mod    Module
	fields Fields
}

// For returns an Entry tagged with mod.
func For(mod Module) Entry { return Entry{mod: mod} }

// WithField returns a copy of entry carrying an additional field.
func (entry Entry) WithField(key string, value any) Entry {
	return entry.WithFields(Fields{key: value})
}

// WithFields returns a copy of entry carrying additional fields.
func (entry Entry) WithFields(fields Fields) Entry {
	merged := make(Fields, len(entry.fields)+len(fields))
	for k, v := range entry.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return Entry{mod: entry.mod, fields: merged}
}

func (entry Entry) logger() *logrus.Entry {
	return logrus.StandardLogger().
		WithField("mod", entry.mod.String()).
		WithFields(logrus.Fields(entry.fields))
}

// Debugf logs a debug-level message if entry's module has debug
// logging enabled.
func (entry Entry) Debugf(format string, args ...any) {
	if debugEnabled(entry.mod) {
		entry.logger().Debugf(format, args...)
	}
}

// Infof logs an info-level message.
func (entry Entry) Infof(format string, args ...any) { entry.logger().Infof(format, args...) }

// Warnf logs a warn-level message.
func (entry Entry) Warnf(format string, args ...any) { entry.logger().Warnf(format, args...) }

// Errorf logs an error-level message.
func (entry Entry) Errorf(format string, args ...any) { entry.logger().Errorf(format, args...) }

// Fatalf logs a fatal-level message and exits the process, per
// logrus.Entry.Fatalf.
func (entry Entry) Fatalf(format string, args ...any) { entry.logger().Fatalf(format, args...) }
