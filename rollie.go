// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wikiparse recognizes wiki markup text into a tree of nodes plus a
// list of structural warnings. It is a thin wrapper around the parse
// subpackage, which holds the actual scanner; see parse.Parse for the
// entry point's documentation.
package wikiparse

import (
	"io"

	seelog "github.com/cihub/seelog"
	"github.com/mohae/wikiparse/parse"
)

// A Node is one element of a parsed document: plain text, a heading, a
// list, a link, a table, and so on. Concrete types are defined in parse.
type Node = parse.Node

// A Warning records a recoverable structural anomaly found while parsing.
// Parsing itself never fails; warnings are how malformed input is surfaced.
type Warning = parse.Warning

// Output is the result of a successful parse: the resulting forest of
// Nodes plus any Warnings collected along the way.
type Output = parse.Output

// Configuration is the external lookup table of protocols, character
// entities, magic words, tag names, and namespaces that the recognizers
// consult. It is immutable once built and safe to share and reuse across
// calls to Parse.
type Configuration = parse.Configuration

// Namespace is a configured link-target prefix, e.g. "File" or "Category".
type Namespace = parse.Namespace

// DefaultConfiguration returns a Configuration seeded with a small, usable
// set of protocols, entities, magic words, tag names, and namespaces.
func DefaultConfiguration() *Configuration {
	return parse.DefaultConfiguration()
}

// Parse recognizes wiki markup text into a Node tree and Warning list using
// configuration as the lookup oracle for protocols, entities, magic words,
// tag classification, and namespaces.
func Parse(configuration *Configuration, input []byte) Output {
	return parse.Parse(configuration, input)
}

// ParseString is a convenience wrapper for Parse taking a string.
func ParseString(configuration *Configuration, input string) Output {
	return parse.Parse(configuration, []byte(input))
}

// DisableLog disables all library log output. Logging is disabled by
// default.
func DisableLog() {
	parse.DisableLog()
}

// UseLogger uses a specified seelog.LoggerInterface to output library log.
func UseLogger(logger seelog.LoggerInterface) {
	parse.UseLogger(logger)
}

// SetLogWriter uses a specified io.Writer to output library log. Use this
// if you are not using seelog in your own application.
func SetLogWriter(writer io.Writer) error {
	return parse.SetLogWriter(writer)
}

// FlushLog flushes pending log output. Call before app shutdown if logging
// has been enabled.
func FlushLog() {
	parse.FlushLog()
}
