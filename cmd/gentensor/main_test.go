package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gentensor/tensor"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gentensor "+version+"\n", out)
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "workers:")
	assert.Contains(t, out, "features:")
}

func TestEchelon(t *testing.T) {
	out, _, err := run(t, "echelon", "--form", "reduced", "--type", "int", "--safe", "2,4;1,3")
	require.NoError(t, err)
	id := tensor.Must(tensor.Identity[int, tensor.Int[int]](2))
	assert.Equal(t, id.String()+"\n", out)

	out, _, err = run(t, "echelon", "--type", "rational", "--form", "ones", "1, 2; 3, 4")
	require.NoError(t, err)
	want := tensor.Must(tensor.Matrix[int, tensor.Int[int]]([][]int{{1, 2}, {0, 1}}))
	assert.Equal(t, want.String()+"\n", out)
}

func TestEchelonErrors(t *testing.T) {
	_, _, err := run(t, "echelon", "--type", "int", "1,2;3")
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, _, err = run(t, "echelon", "--type", "int", "1,x")
	assert.Error(t, err)

	_, _, err = run(t, "echelon", "--type", "quaternion", "1,2")
	assert.ErrorContains(t, err, "unknown element type")

	_, _, err = run(t, "echelon", "--form", "diagonal", "1,2")
	assert.ErrorContains(t, err, "unknown form")

	_, _, err = run(t, "echelon", "--type", "int", "0,1;1,0")
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func TestDet(t *testing.T) {
	out, _, err := run(t, "det", "1,2,3;4,5,6;7,8,10")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)

	out, _, err = run(t, "det", "--type", "int", "--safe", "2,4;1,3")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestMatMul(t *testing.T) {
	out, _, err := run(t, "matmul", "--type", "int", "--parallel", "1,2;3,4", "5,7;6,8")
	require.NoError(t, err)
	want := tensor.Must(tensor.Matrix[int, tensor.Int[int]]([][]int{{17, 23}, {39, 55}}))
	assert.Equal(t, want.String()+"\n", out)

	_, _, err = run(t, "matmul", "1,2,3", "1,2,3")
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestApply(t *testing.T) {
	out, _, err := run(t, "apply", "--op", "sub", "--type", "float", "1.5,2", "0.5,4")
	require.NoError(t, err)
	want := tensor.Must(tensor.Matrix[float64, tensor.Float[float64]]([][]float64{{1, -2}}))
	assert.Equal(t, want.String()+"\n", out)

	_, _, err = run(t, "apply", "--op", "pow", "1", "2")
	assert.ErrorContains(t, err, "unknown operation")
}

func TestVerbose(t *testing.T) {
	t.Cleanup(func() { tensor.SetLogger(nil) })

	out, errOut, err := run(t, "--verbose", "apply", "--op", "div", "--parallel", "1/2,3;1,1", "1/4,6;2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "2")
	assert.Contains(t, errOut, "built procedure")
	assert.Contains(t, errOut, "kind=division")
}
