package loops

import (
	"context"

	"github.com/born-ml/gentensor/internal/element"
	"github.com/born-ml/gentensor/internal/parallel"
	"github.com/born-ml/gentensor/internal/tensor"
)

// maxSpecializedRank is the deepest rank with a hand-unrolled kernel. Other
// ranks run through the index-enumeration fallback.
const maxSpecializedRank = 4

// outerBody computes res = op(a, b) for every element whose outermost index
// is x0. Partitions with distinct x0 write disjoint parts of res.
type outerBody func(x0 int) error

// bodyBuilder binds a rank-specific kernel to concrete tensors. The strides
// and offsets of all three tensors are loaded into locals once per call.
type bodyBuilder[T any, O element.Ops[T]] func(op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody

func rank1[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody {
	ad, bd, rd := a.Data(), b.Data(), res.Data()
	as0 := a.Strides()[0]
	bs0 := b.Strides()[0]
	rs0 := res.Strides()[0]
	ao, bo, ro := a.Offset(), b.Offset(), res.Offset()

	return func(x0 int) error {
		v, err := op(ad[x0*as0+ao], bd[x0*bs0+bo])
		if err != nil {
			return err
		}
		rd[x0*rs0+ro] = v
		return nil
	}
}

func rank2[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody {
	ad, bd, rd := a.Data(), b.Data(), res.Data()
	as0, as1 := a.Strides()[0], a.Strides()[1]
	bs0, bs1 := b.Strides()[0], b.Strides()[1]
	rs0, rs1 := res.Strides()[0], res.Strides()[1]
	ao, bo, ro := a.Offset(), b.Offset(), res.Offset()
	n1 := res.Shape()[1]

	return func(x0 int) error {
		ai, bi, ri := x0*as0+ao, x0*bs0+bo, x0*rs0+ro
		for x1 := 0; x1 < n1; x1++ {
			v, err := op(ad[ai+x1*as1], bd[bi+x1*bs1])
			if err != nil {
				return err
			}
			rd[ri+x1*rs1] = v
		}
		return nil
	}
}

func rank3[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody {
	ad, bd, rd := a.Data(), b.Data(), res.Data()
	as0, as1, as2 := a.Strides()[0], a.Strides()[1], a.Strides()[2]
	bs0, bs1, bs2 := b.Strides()[0], b.Strides()[1], b.Strides()[2]
	rs0, rs1, rs2 := res.Strides()[0], res.Strides()[1], res.Strides()[2]
	ao, bo, ro := a.Offset(), b.Offset(), res.Offset()
	n1, n2 := res.Shape()[1], res.Shape()[2]

	return func(x0 int) error {
		for x1 := 0; x1 < n1; x1++ {
			ai := x0*as0 + x1*as1 + ao
			bi := x0*bs0 + x1*bs1 + bo
			ri := x0*rs0 + x1*rs1 + ro
			for x2 := 0; x2 < n2; x2++ {
				v, err := op(ad[ai+x2*as2], bd[bi+x2*bs2])
				if err != nil {
					return err
				}
				rd[ri+x2*rs2] = v
			}
		}
		return nil
	}
}

func rank4[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody {
	ad, bd, rd := a.Data(), b.Data(), res.Data()
	as0, as1, as2, as3 := a.Strides()[0], a.Strides()[1], a.Strides()[2], a.Strides()[3]
	bs0, bs1, bs2, bs3 := b.Strides()[0], b.Strides()[1], b.Strides()[2], b.Strides()[3]
	rs0, rs1, rs2, rs3 := res.Strides()[0], res.Strides()[1], res.Strides()[2], res.Strides()[3]
	ao, bo, ro := a.Offset(), b.Offset(), res.Offset()
	n1, n2, n3 := res.Shape()[1], res.Shape()[2], res.Shape()[3]

	return func(x0 int) error {
		for x1 := 0; x1 < n1; x1++ {
			for x2 := 0; x2 < n2; x2++ {
				ai := x0*as0 + x1*as1 + x2*as2 + ao
				bi := x0*bs0 + x1*bs1 + x2*bs2 + bo
				ri := x0*rs0 + x1*rs1 + x2*rs2 + ro
				for x3 := 0; x3 < n3; x3++ {
					v, err := op(ad[ai+x3*as3], bd[bi+x3*bs3])
					if err != nil {
						return err
					}
					rd[ri+x3*rs3] = v
				}
			}
		}
		return nil
	}
}

// fallbackBody walks the remaining axes of the x0 slice by index enumeration.
// It serves ranks above maxSpecializedRank.
func fallbackBody[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) outerBody {
	return func(x0 int) error {
		av, _ := a.View(x0)
		bv, _ := b.View(x0)
		rv, _ := res.View(x0)
		return enumerate(op, av, bv, rv)
	}
}

// enumerate applies op over every index of res without specialization.
func enumerate[T any, O element.Ops[T]](op binaryFunc[T], a, b, res *tensor.Tensor[T, O]) error {
	for idx := range res.Indices() {
		v, err := op(a.AtUnchecked(idx...), b.AtUnchecked(idx...))
		if err != nil {
			return err
		}
		res.SetUnchecked(v, idx...)
	}
	return nil
}

// build synthesizes the procedure for key. Rank 0 runs enumerate directly;
// every other rank iterates the outermost axis either inline or through
// parallel.ForErr with one task per outer index.
func build[T any, O element.Ops[T]](key Key, op binaryFunc[T], cfg parallel.Config) Procedure[T, O] {
	if key.Rank == 0 {
		return func(a, b, res *tensor.Tensor[T, O]) error {
			return enumerate(op, a, b, res)
		}
	}

	var body bodyBuilder[T, O]
	switch key.Rank {
	case 1:
		body = rank1[T, O]
	case 2:
		body = rank2[T, O]
	case 3:
		body = rank3[T, O]
	case 4:
		body = rank4[T, O]
	default:
		body = fallbackBody[T, O]
	}

	if key.Parallel {
		return func(a, b, res *tensor.Tensor[T, O]) error {
			return parallel.ForErr(context.Background(), res.Shape()[0], body(op, a, b, res), cfg)
		}
	}
	return func(a, b, res *tensor.Tensor[T, O]) error {
		run := body(op, a, b, res)
		n0 := res.Shape()[0]
		for x0 := 0; x0 < n0; x0++ {
			if err := run(x0); err != nil {
				return err
			}
		}
		return nil
	}
}
