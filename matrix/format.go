// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Textual contracts consumed by display and persistence layers:
//     display rows (Render/Format) and the appendable result record (WriteRecord).
//   - Output is locale-independent: '.' decimal separator, strconv/fmt verbs only.
//
// Formats:
//   - Display: every field "%8.3f" followed by one space; "\n" after each row.
//   - Record:  "Matrix <r>x<c>\n", rows of "%.6f" joined by ",", then "----\n".
//   - Scalar:  "Scalar <label>\n", "%.6f\n", then "----\n".

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	nullMatrixLine   = "NULL matrix\n"
	recordHeaderFmt  = "Matrix %dx%d\n"
	scalarHeader     = "Scalar"
	recordTerminator = "----\n"
	recordSep        = ","
	displayFieldFmt  = "%8.3f "
	recordPrec       = 6
)

// Render writes m in the display layout. A nil or released matrix renders
// as a single "NULL matrix" line.
// Complexity: O(r*c).
func Render(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)
	if ValidateNotNil(m) != nil {
		if _, err := bw.WriteString(nullMatrixLine); err != nil {
			return err
		}
		return bw.Flush()
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(bw, displayFieldFmt, v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Format returns the display layout of m as a string.
func (m *Dense) Format() string {
	var b strings.Builder
	_ = Render(&b, m) // strings.Builder never fails; a *Dense never fails At inside bounds

	return b.String()
}

// WriteRecord appends the persisted record of m to w.
// Errors: ErrNilMatrix for a nil or released matrix; write errors unchanged.
// Complexity: O(r*c).
func WriteRecord(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("WriteRecord", err)
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	if _, err := fmt.Fprintf(bw, recordHeaderFmt, rows, cols); err != nil {
		return err
	}
	buf := make([]byte, 0, 32)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, recordSep...)
			}
			buf = strconv.AppendFloat(buf, v, 'f', recordPrec, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	if _, err := bw.WriteString(recordTerminator); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteScalarRecord appends a scalar result (e.g. a determinant) to w.
// An empty label yields a bare "Scalar" header.
func WriteScalarRecord(w io.Writer, label string, v float64) error {
	header := scalarHeader
	if label = strings.TrimSpace(label); label != "" {
		header += " " + label
	}
	_, err := io.WriteString(w, header+"\n"+strconv.FormatFloat(v, 'f', recordPrec, 64)+"\n"+recordTerminator)

	return err
}
