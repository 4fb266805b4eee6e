package ggbench

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Results is the throughput table indexed by context and test case.
// The zero value is an empty table.
type Results struct {
	cells [NumContexts][NumTests]int
}

// Add adds v to the cell for (c, t) and returns the new cell value.
// Repeated runs of the same pair accumulate.
func (r *Results) Add(c ContextID, t TestID, v int) int {
	r.cells[c][t] += v
	return r.cells[c][t]
}

// At returns the cell for (c, t).
func (r *Results) At(c ContextID, t TestID) int {
	return r.cells[c][t]
}

// Reset zeroes every cell.
func (r *Results) Reset() {
	r.cells = [NumContexts][NumTests]int{}
}

// WriteTSV writes the table as tab-separated text: a header row holding an
// empty cell and the test names, then one row per context.
func (r *Results) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, name := range testNames {
		bw.WriteByte('\t')
		bw.WriteString(name)
	}
	bw.WriteByte('\n')

	var num []byte
	for c, row := range r.cells {
		bw.WriteString(contextNames[c])
		for _, v := range row {
			bw.WriteByte('\t')
			num = strconv.AppendInt(num[:0], int64(v), 10)
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeFile writes the table to path, replacing any existing file.
func (r *Results) writeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create results file")
	}
	if err := r.WriteTSV(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write results to %s", path)
	}
	return errors.Wrapf(f.Close(), "close results file %s", path)
}
