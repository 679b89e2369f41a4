// SPDX-License-Identifier: MIT
package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/densecalc/matrix"
)

// errAborted reports that a matrix read was abandoned after the user was
// told why. The session returns to the menu.
var errAborted = errors.New("calc: matrix read aborted")

// errBadToken is returned by the typed token readers on a parse failure.
var errBadToken = errors.New("calc: malformed token")

// Reader splits interactive input into whitespace-separated tokens. A line
// may carry any number of tokens, and a value may span lines, so
// "2 2\n1 2 3 4" and one value per line read the same way. Lines have no
// length limit: a whole matrix may be pasted on one line.
type Reader struct {
	br  *bufio.Reader
	tok []byte
	// eol is set once the newline ending the last token's line was consumed.
	eol bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r), eol: true}
}

// next returns the next token, io.EOF once input is exhausted.
func (r *Reader) next() (string, error) {
	r.tok = r.tok[:0]
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(c) {
			r.tok = append(r.tok, c)
			break
		}
	}
	r.eol = false
	for {
		c, err := r.br.ReadByte()
		if errors.Is(err, io.EOF) {
			r.eol = true
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			r.eol = c == '\n'
			break
		}
		r.tok = append(r.tok, c)
	}
	return string(r.tok), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// DiscardLine drops whatever is left of the current line.
func (r *Reader) DiscardLine() {
	if r.eol {
		return
	}
	for {
		_, err := r.br.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			break
		}
	}
	r.eol = true
}

// ReadInt reads one base-10 integer token.
func (r *Reader) ReadInt() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadToken, tok)
	}
	return n, nil
}

// ReadFloat reads one finite float token. NaN and ±Inf are rejected.
func (r *Reader) ReadFloat() (float64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", errBadToken, tok)
	}
	return v, nil
}

// ReadMatrix prompts on out for a shape and then r*c row-major values.
// On malformed input it prints the reason, discards the rest of the line and
// returns errAborted; io.EOF is passed through unchanged.
func ReadMatrix(r *Reader, out io.Writer) (*matrix.Dense, error) {
	fmt.Fprint(out, "Enter rows and columns (e.g. 3 3): ")
	rows, err := r.ReadInt()
	if err == nil {
		var cols int
		cols, err = r.ReadInt()
		if err == nil {
			return readElements(r, out, rows, cols)
		}
	}
	if errors.Is(err, errBadToken) {
		fmt.Fprintln(out, "Invalid input.")
		r.DiscardLine()
		return nil, errAborted
	}
	return nil, err
}

func readElements(r *Reader, out io.Writer, rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	switch {
	case errors.Is(err, matrix.ErrAllocationFailure):
		fmt.Fprintln(out, "Memory allocation failed.")
		r.DiscardLine()
		return nil, errAborted
	case err != nil:
		fmt.Fprintln(out, "Invalid input.")
		r.DiscardLine()
		return nil, errAborted
	}

	fmt.Fprintf(out, "Enter %d elements (row-wise):\n", rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := r.ReadFloat()
			if err != nil {
				m.Release()
				if errors.Is(err, errBadToken) {
					fmt.Fprintln(out, "Invalid number. Aborting read.")
					r.DiscardLine()
					return nil, errAborted
				}
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				m.Release()
				return nil, err
			}
		}
	}
	return m, nil
}
