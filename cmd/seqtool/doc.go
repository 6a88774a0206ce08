/*
Command seqtool streams the lines of a text file through a lazy sequence.

Usage:

	seqtool [flags] file

Flags:

	-trace level   trace level [Debug|Info|Error]
	-grep text     keep lines containing text
	-distinct      drop repeated lines
	-sort          sort lines
	-head n        output the first n lines only
	-tail n        output the last n lines only
	-group         group lines by their first character
	-i             interactive mode

In interactive mode, commands derive new sequences from the current one:

	grep TEXT, distinct, sort [natural], reverse, head N, tail N

Command undo steps back to the previous sequence, count, show and group print
the current one, quit ends the session.

The file is read lazily: with -head, reading stops after n matching lines and
the file is closed right away.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.collection'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.collection")
}
