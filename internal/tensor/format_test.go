package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringVector(t *testing.T) {
	assert.Equal(t, "0 1 2", arange(t, 3).String())
}

func TestStringMatrix(t *testing.T) {
	m := arange(t, 2, 2)
	require.NoError(t, m.Set(-12, 1, 1))
	want := "Matrix[2 x 2]\n" +
		"0       1       \n" +
		"2       -12     "
	assert.Equal(t, want, m.String())
}

func TestStringTensor(t *testing.T) {
	x := arange(t, 2, 1, 2)
	want := "Tensor[2 x 1 x 2] {\n" +
		"  Matrix[1 x 2]\n" +
		"  0       1       \n" +
		"  Matrix[1 x 2]\n" +
		"  2       3       \n" +
		"}"
	assert.Equal(t, want, x.String())
}
