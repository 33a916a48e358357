package echelon

import (
	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/tensor"
)

// rows is a row-oriented handle over a contiguous working matrix.
type rows[T any, O element.Ops[T]] struct {
	data []T
	m, n int
}

func rowsOf[T any, O element.Ops[T]](t *tensor.Tensor[T, O]) rows[T, O] {
	s := t.Shape()
	return rows[T, O]{data: t.Data()[t.Offset():], m: s[0], n: s[1]}
}

func (r rows[T, O]) at(i, j int) T {
	return r.data[i*r.n+j]
}

// add performs row[dst] += coef * row[src].
func (r rows[T, O]) add(dst, src int, coef T) {
	var o O
	d := r.data[dst*r.n : (dst+1)*r.n]
	s := r.data[src*r.n : (src+1)*r.n]
	for c := range d {
		d[c] = o.Add(d[c], o.Multiply(s[c], coef))
	}
}

// zero stores O.Zero() at (i, j).
func (r rows[T, O]) zero(i, j int) {
	var o O
	r.data[i*r.n+j] = o.Zero()
}

// scale performs row[i] *= coef.
func (r rows[T, O]) scale(i int, coef T) {
	var o O
	row := r.data[i*r.n : (i+1)*r.n]
	for c := range row {
		row[c] = o.Multiply(row[c], coef)
	}
}

// leading returns the column and value of the first non-zero element of
// row i. ok is false for an all-zero row.
func (r rows[T, O]) leading(i int) (col int, v T, ok bool) {
	var o O
	for c := 0; c < r.n; c++ {
		if x := r.at(i, c); !o.IsZero(x) {
			return c, x, true
		}
	}
	return 0, v, false
}
