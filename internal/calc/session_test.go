// SPDX-License-Identifier: MIT
package calc_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/katalvlaran/densecalc/internal/calc"
	"github.com/katalvlaran/densecalc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saved struct {
	op     string
	record string
}

// memorySink keeps encoded records in memory.
type memorySink struct {
	saves []saved
	err   error
}

func (m *memorySink) SaveMatrix(_ context.Context, op string, x matrix.Matrix) error {
	if m.err != nil {
		return m.err
	}
	var buf bytes.Buffer
	if err := matrix.WriteRecord(&buf, x); err != nil {
		return err
	}
	m.saves = append(m.saves, saved{op: op, record: buf.String()})
	return nil
}

func (m *memorySink) SaveScalar(_ context.Context, op string, v float64) error {
	if m.err != nil {
		return m.err
	}
	var buf bytes.Buffer
	if err := matrix.WriteScalarRecord(&buf, op, v); err != nil {
		return err
	}
	m.saves = append(m.saves, saved{op: op, record: buf.String()})
	return nil
}

func runSession(t *testing.T, opts calc.Options, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, calc.NewSession(opts).Run(context.Background(), strings.NewReader(input), &out))
	return out.String()
}

func TestAddAndSave(t *testing.T) {
	sink := &memorySink{}
	out := runSession(t, calc.Options{Sink: sink, Destination: "results.txt"},
		"1\n2 2\n1 2 3 4\n2 2\n5 6 7 8\n8\n9\n")

	require.Contains(t, out, "Matrix Calculator - Full Version\n")
	require.Contains(t, out, "Matrix A:\nEnter rows and columns (e.g. 3 3): Enter 4 elements (row-wise):\n")
	require.Contains(t, out, "Result (A + B):\n   6.000    8.000 \n  10.000   12.000 \n")
	require.Contains(t, out, "Saved result to results.txt\n")
	require.True(t, strings.HasSuffix(out, "Exiting. Goodbye!\n"))

	require.Equal(t, []saved{{op: calc.OpAdd, record: "Matrix 2x2\n6.000000,8.000000\n10.000000,12.000000\n----\n"}}, sink.saves)
}

func TestSubtractAndMultiply(t *testing.T) {
	out := runSession(t, calc.Options{},
		"2\n1 2\n5 5\n1 2\n1 2\n3\n1 2\n1 2\n2 1\n3 4\n9\n")
	require.Contains(t, out, "Result (A - B):\n   4.000    3.000 \n")
	require.Contains(t, out, "Result (A * B):\n  11.000 \n")
}

func TestMismatchMessages(t *testing.T) {
	out := runSession(t, calc.Options{Sink: &memorySink{}},
		"1\n1 2\n1 2\n2 1\n1 2\n"+
			"2\n1 1\n1\n1 2\n1 2\n"+
			"3\n2 2\n1 2 3 4\n3 1\n1 2 3\n"+
			"8\n9\n")
	require.Contains(t, out, "Addition not possible (size mismatch).\n")
	require.Contains(t, out, "Subtraction not possible (size mismatch).\n")
	require.Contains(t, out, "Multiplication not possible (incompatible sizes).\n")
	require.Contains(t, out, "No result in memory to save.\n")
}

func TestDeterminantSavesScalar(t *testing.T) {
	sink := &memorySink{}
	out := runSession(t, calc.Options{Sink: sink, Destination: "r.txt"},
		"5\n3 3\n2 -3 1\n2 0 -1\n1 4 5\n8\n9\n")
	require.Contains(t, out, "Determinant = 49.000000\n")
	require.Equal(t, []saved{{op: calc.OpDeterminant, record: "Scalar determinant\n49.000000\n----\n"}}, sink.saves)
}

func TestDeterminantRequiresSquare(t *testing.T) {
	out := runSession(t, calc.Options{}, "5\n2 3\n1 2 3 4 5 6\n9\n")
	require.Contains(t, out, "Determinant requires a square matrix.\n")
	require.NotContains(t, out, "Determinant =")
}

func TestNewResultReplacesPrevious(t *testing.T) {
	sink := &memorySink{}
	runSession(t, calc.Options{Sink: sink},
		"5\n1 1\n7\n4\n1 2\n1 2\n8\n5\n1 1\n3\n8\n9\n")
	require.Equal(t, []saved{
		{op: calc.OpTranspose, record: "Matrix 2x1\n1.000000\n2.000000\n----\n"},
		{op: calc.OpDeterminant, record: "Scalar determinant\n3.000000\n----\n"},
	}, sink.saves)
}

func TestFailedOperationKeepsPreviousResult(t *testing.T) {
	sink := &memorySink{}
	runSession(t, calc.Options{Sink: sink},
		"4\n1 1\n5\n1\n1 1\n1\n1 2\n1 2\n8\n9\n")
	require.Len(t, sink.saves, 1)
	require.Equal(t, calc.OpTranspose, sink.saves[0].op)
}

func TestCofactorAndInverse(t *testing.T) {
	out := runSession(t, calc.Options{},
		"6\n2 2\n1 2 3 4\n7\n2 2\n4 7 2 6\n7\n2 2\n1 2 2 4\n6\n1 2\n1 2\n9\n")
	require.Contains(t, out, "Cofactor matrix:\n   4.000   -3.000 \n  -2.000    1.000 \n")
	require.Contains(t, out, "Inverse:\n   0.600   -0.700 \n  -0.200    0.400 \n")
	require.Contains(t, out, "Matrix is singular (determinant is zero).\n")
	require.Contains(t, out, "Cofactor matrix requires a square matrix.\n")
}

func TestMaxOrder(t *testing.T) {
	out := runSession(t, calc.Options{MaxOrder: 2},
		"5\n3 3\n1 2 3 4 5 6 7 8 9\n6\n2 2\n1 0 0 1\n9\n")
	require.Contains(t, out, "Matrix order 3 exceeds the limit of 2.\n")
	require.NotContains(t, out, "Determinant =")
	require.Contains(t, out, "Cofactor matrix:\n")
}

func TestInvalidInput(t *testing.T) {
	out := runSession(t, calc.Options{},
		"abc def\n42\n1\nx 2\n1\n0 2\n1\n1 1\noops\n9\n")
	assert.Contains(t, out, "Invalid input. Try again.\n")
	assert.Equal(t, 1, strings.Count(out, "Invalid input. Try again.\n"), "rest of the line is discarded")
	assert.Contains(t, out, "Invalid choice.\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid input.\n"))
	assert.Contains(t, out, "Invalid number. Aborting read.\n")
	assert.True(t, strings.HasSuffix(out, "Exiting. Goodbye!\n"))
}

func TestEndOfInputExitsCleanly(t *testing.T) {
	for _, input := range []string{"", "1\n2 2\n1 2", "5\n"} {
		out := runSession(t, calc.Options{}, input)
		require.NotContains(t, out, "Goodbye")
	}
}

func TestCanceledContextStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := calc.NewSession(calc.Options{}).Run(ctx, strings.NewReader("9\n"), &out)
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, out.String(), "Menu:")
}

func TestSaveErrorIsReported(t *testing.T) {
	var logs bytes.Buffer
	sink := &memorySink{err: errors.New("disk full")}
	out := runSession(t, calc.Options{Sink: sink, Logger: log.New(&logs, "", 0)},
		"4\n1 1\n3\n8\n9\n")
	require.Contains(t, out, "Error saving result: disk full\n")
	require.Contains(t, logs.String(), "save transpose: disk full")
}

func TestSaveWithoutSink(t *testing.T) {
	out := runSession(t, calc.Options{}, "4\n1 1\n3\n8\n9\n")
	require.Contains(t, out, "Saving is not configured.\n")
}

func TestVerboseLogsTimings(t *testing.T) {
	var logs bytes.Buffer
	runSession(t, calc.Options{Verbose: true, Logger: log.New(&logs, "", 0)},
		"5\n1 1\n2\n4\n1 1\n2\n9\n")
	require.Contains(t, logs.String(), "determinant took ")
	require.Contains(t, logs.String(), "transpose took ")
}

func TestLargeMatrixOnOneLine(t *testing.T) {
	sink := &memorySink{}
	input := "4\n100 100\n" + strings.Repeat("1234.5678 ", 100*100) + "\n8\n9\n"
	out := runSession(t, calc.Options{Sink: sink}, input)

	require.Contains(t, out, "Enter 10000 elements (row-wise):\n")
	require.Contains(t, out, "Transpose:\n")
	require.Equal(t, 100, strings.Count(out, strings.Repeat("1234.568 ", 100)+"\n"))
	require.True(t, strings.HasSuffix(out, "Exiting. Goodbye!\n"))
	require.Len(t, sink.saves, 1)
	require.True(t, strings.HasPrefix(sink.saves[0].record, "Matrix 100x100\n"))
}
