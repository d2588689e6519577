// Command ndinspect exercises the ndarray runtime and renders the
// diagnostic dumps of each step, which is useful when checking how
// generated code will see a given layout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/AjaySDwivedi1/pyccel/ndarray"
)

const version = "v0.1.0-dev"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	debug := flag.Bool("debug", false, "log runtime lifecycle events")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ndinspect %s\n", version)
		return
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fail(err)
		}
		defer logger.Sync() //nolint:errcheck
		ndarray.SetLogger(logger)
	}

	if err := run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
	os.Exit(1)
}

func show(label string, a *ndarray.Ndarray) error {
	dump, err := a.DumpString()
	if err != nil {
		return err
	}
	fmt.Printf("%s shape=%v strides=%v %s: %s",
		labelStyle.Render(label), a.Shape(), a.Strides(), a.Order(), dump)
	return nil
}

func run() error {
	fmt.Println(titleStyle.Render("ndarray runtime inspection"))

	// An owning row-major array, numbered in logical order.
	a, err := ndarray.New(ndarray.Shape{3, 4}, ndarray.Int64, ndarray.RowMajor)
	if err != nil {
		return err
	}
	defer a.Release()
	data := a.AsInt64()
	for i := range data[:a.NumElements()] {
		data[i] = int64(i)
	}
	if err := show("owner", a); err != nil {
		return err
	}

	// Every other column of row 1, as a rank-1 view.
	v, err := a.Slice(ndarray.At(1), ndarray.R(0, 4, 2))
	if err != nil {
		return err
	}
	defer v.ReleaseView()
	if err := v.Fill(int64(-1)); err != nil {
		return err
	}
	if err := show("slice", v); err != nil {
		return err
	}
	if err := show("owner after write through slice", a); err != nil {
		return err
	}

	// Zero-copy transpose.
	tr, err := a.Transpose()
	if err != nil {
		return err
	}
	defer tr.ReleaseView()
	if err := show("transpose", tr); err != nil {
		return err
	}

	// Materialize a column-major copy: same logical contents, different
	// physical storage.
	cm, err := ndarray.New(a.Shape(), a.DType(), ndarray.ColMajor)
	if err != nil {
		return err
	}
	defer cm.Release()
	if err := ndarray.CopyData(cm, a); err != nil {
		return err
	}
	if err := show("column-major copy", cm); err != nil {
		return err
	}

	// Assemble rows into a fresh destination.
	dest, err := ndarray.New(ndarray.Shape{2, 4}, ndarray.Int64, ndarray.RowMajor)
	if err != nil {
		return err
	}
	defer dest.Release()
	asm, err := ndarray.NewAssembler(dest)
	if err != nil {
		return err
	}
	for _, row := range [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}} {
		src, err := ndarray.New(ndarray.Shape{len(row)}, ndarray.Int64, ndarray.RowMajor)
		if err != nil {
			return err
		}
		copy(src.AsInt64(), row)
		if err := asm.Append(src); err != nil {
			return err
		}
		src.Release()
	}
	return show("assembled", dest)
}
