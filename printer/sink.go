// Package printer implements yapl's print family: the shared argument
// handling for yapping/yappin/baka, and the injectable output Sink those
// three built-ins (plus yyerror) write through. Output goes through an
// io.Writer rather than hardcoded os.Stdout/os.Stderr, so an embedding
// program can capture it.
package printer

import (
	"fmt"
	"io"
)

// Sink is where the print family and yyerror write. fmt-style verbs in
// format are honored via fmt.Fprintf.
type Sink interface {
	Yapping(format string, args ...any)
	Yappin(format string, args ...any)
	Baka(format string, args ...any)
	YYError(msg string)
}

// StdSink is the default Sink: yapping/yappin go to Out, baka and yyerror
// go to Err.
type StdSink struct {
	Out io.Writer
	Err io.Writer
}

// NewStdSink builds a StdSink writing to the given streams.
func NewStdSink(out, err io.Writer) *StdSink {
	return &StdSink{Out: out, Err: err}
}

func (s *StdSink) Yapping(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *StdSink) Yappin(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func (s *StdSink) Baka(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// YYError reports a recoverable semantic error. Evaluation
// always continues after this call; it is a diagnostic, not a panic.
func (s *StdSink) YYError(msg string) {
	fmt.Fprintf(s.Err, "yyerror: %s\n", msg)
}
