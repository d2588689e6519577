package ndarray

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes every element of the handle's window in physical storage
// order as a bracketed scalar list on a single line, with kind-specific
// formatting. It is the runtime's only diagnostic output.
func (a *Ndarray) Dump(w io.Writer) error {
	if err := a.live(); err != nil {
		return err
	}
	var b strings.Builder
	switch a.dtype {
	case Bool:
		for _, v := range a.AsBool()[:a.length] {
			fmt.Fprintf(&b, "[%t]", v)
		}
	case Int8:
		for _, v := range a.AsInt8()[:a.length] {
			fmt.Fprintf(&b, "[%d]", v)
		}
	case Int16:
		for _, v := range a.AsInt16()[:a.length] {
			fmt.Fprintf(&b, "[%d]", v)
		}
	case Int32:
		for _, v := range a.AsInt32()[:a.length] {
			fmt.Fprintf(&b, "[%d]", v)
		}
	case Int64:
		for _, v := range a.AsInt64()[:a.length] {
			fmt.Fprintf(&b, "[%d]", v)
		}
	case Float32:
		for _, v := range a.AsFloat32()[:a.length] {
			fmt.Fprintf(&b, "[%f]", v)
		}
	case Float64:
		for _, v := range a.AsFloat64()[:a.length] {
			fmt.Fprintf(&b, "[%f]", v)
		}
	case Complex64:
		for _, v := range a.AsComplex64()[:a.length] {
			fmt.Fprintf(&b, "[%v]", v)
		}
	case Complex128:
		for _, v := range a.AsComplex128()[:a.length] {
			fmt.Fprintf(&b, "[%v]", v)
		}
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// DumpString renders Dump's output as a string.
func (a *Ndarray) DumpString() (string, error) {
	var b strings.Builder
	if err := a.Dump(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
