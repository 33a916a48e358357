package tensor

import (
	"strings"
)

const cellWidth = 8

// String formats the tensor with O.String. Matrices print one row per line
// with cells padded to a fixed width, vectors print space separated, and
// higher ranks print every trailing matrix indented inside a header.
func (t *Tensor[T, O]) String() string {
	var o O
	switch len(t.shape) {
	case 0:
		return o.String(t.buf.data[t.offset])
	case 1:
		els := make([]string, 0, t.shape[0])
		for i := 0; i < t.shape[0]; i++ {
			els = append(els, o.String(t.AtUnchecked(i)))
		}
		return strings.Join(els, " ")
	case 2:
		var sb strings.Builder
		sb.WriteString("Matrix[" + t.shape.String() + "]")
		for i := 0; i < t.shape[0]; i++ {
			sb.WriteByte('\n')
			for j := 0; j < t.shape[1]; j++ {
				cell := o.String(t.AtUnchecked(i, j))
				sb.WriteString(cell)
				if pad := cellWidth - len(cell); pad > 0 {
					sb.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString("Tensor[" + t.shape.String() + "] {")
	for idx := range t.Leading(2) {
		sub, _ := t.View(idx...)
		sb.WriteString("\n  ")
		sb.WriteString(strings.ReplaceAll(sub.String(), "\n", "\n  "))
	}
	sb.WriteString("\n}")
	return sb.String()
}
