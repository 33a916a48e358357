package main

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/born-ml/gentensor/tensor"
)

// parseMatrix reads a matrix written as "1,2;3,4": rows separated by
// semicolons, cells by commas.
func parseMatrix[T any, O tensor.Ops[T]](s string, parse func(string) (T, error)) (*tensor.Tensor[T, O], error) {
	rows := lo.Map(strings.Split(s, ";"), func(row string, _ int) []string {
		return lo.Map(strings.Split(row, ","), func(cell string, _ int) string {
			return strings.TrimSpace(cell)
		})
	})
	vals := make([][]T, len(rows))
	for i, row := range rows {
		vals[i] = make([]T, len(row))
		for j, cell := range row {
			v, err := parse(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			vals[i][j] = v
		}
	}
	return tensor.Matrix[T, O](vals)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	return r, nil
}

// elementTypes are the values accepted by --type.
var elementTypes = []string{"int", "float", "rational"}

func checkType(typ string) error {
	if !lo.Contains(elementTypes, typ) {
		return fmt.Errorf("unknown element type %q (want one of %s)", typ, strings.Join(elementTypes, ", "))
	}
	return nil
}

// dispatch runs fn instantiated for the element type named by typ.
func dispatch(typ string, ints, floats, rats func() error) error {
	if err := checkType(typ); err != nil {
		return err
	}
	switch typ {
	case "int":
		return ints()
	case "float":
		return floats()
	default:
		return rats()
	}
}

func newEchelonCmd() *cobra.Command {
	var (
		form string
		typ  string
		safe bool
	)
	cmd := &cobra.Command{
		Use:   "echelon MATRIX",
		Short: "Compute a row echelon form",
		Example: `  gentensor echelon --form reduced --type int --safe "2,4;1,3"
  gentensor echelon --type rational "1/2,1;3,4"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(typ,
				func() error { return runEchelon[int, tensor.Int[int]](out, args[0], strconv.Atoi, form, safe) },
				func() error { return runEchelon[float64, tensor.Float[float64]](out, args[0], parseFloat, form, safe) },
				func() error { return runEchelon[*big.Rat, tensor.Rational](out, args[0], parseRat, form, safe) },
			)
		},
	}
	cmd.Flags().StringVar(&form, "form", "row", "echelon form: row, ones or reduced")
	cmd.Flags().StringVar(&typ, "type", "rational", "element type: int, float or rational")
	cmd.Flags().BoolVar(&safe, "safe", false, "defer division until the end")
	return cmd
}

func runEchelon[T any, O tensor.Ops[T]](w io.Writer, arg string, parse func(string) (T, error), form string, safe bool) error {
	m, err := parseMatrix[T, O](arg, parse)
	if err != nil {
		return err
	}
	opts := lo.Ternary(safe, []tensor.Option{tensor.Safe()}, nil)

	var res *tensor.Tensor[T, O]
	switch form {
	case "row":
		res, err = tensor.RowEchelon(m, opts...)
	case "ones":
		res, err = tensor.RowEchelonLeadingOnes(m, opts...)
	case "reduced":
		res, err = tensor.ReducedRowEchelon(m, opts...)
	default:
		return fmt.Errorf("unknown form %q (want row, ones or reduced)", form)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}

func newDetCmd() *cobra.Command {
	var (
		typ  string
		safe bool
	)
	cmd := &cobra.Command{
		Use:   "det MATRIX",
		Short: "Compute the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(typ,
				func() error { return runDet[int, tensor.Int[int]](out, args[0], strconv.Atoi, safe) },
				func() error { return runDet[float64, tensor.Float[float64]](out, args[0], parseFloat, safe) },
				func() error { return runDet[*big.Rat, tensor.Rational](out, args[0], parseRat, safe) },
			)
		},
	}
	cmd.Flags().StringVar(&typ, "type", "rational", "element type: int, float or rational")
	cmd.Flags().BoolVar(&safe, "safe", false, "defer division until the end")
	return cmd
}

func runDet[T any, O tensor.Ops[T]](w io.Writer, arg string, parse func(string) (T, error), safe bool) error {
	m, err := parseMatrix[T, O](arg, parse)
	if err != nil {
		return err
	}
	d, err := tensor.Determinant(m, lo.Ternary(safe, []tensor.Option{tensor.Safe()}, nil)...)
	if err != nil {
		return err
	}
	var o O
	_, err = fmt.Fprintln(w, o.String(d))
	return err
}

func newMatMulCmd() *cobra.Command {
	var (
		typ string
		par bool
	)
	cmd := &cobra.Command{
		Use:     "matmul A B",
		Short:   "Multiply two matrices",
		Example: `  gentensor matmul --type int "1,2;3,4" "5,7;6,8"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(typ,
				func() error { return runMatMul[int, tensor.Int[int]](out, args, strconv.Atoi, par) },
				func() error { return runMatMul[float64, tensor.Float[float64]](out, args, parseFloat, par) },
				func() error { return runMatMul[*big.Rat, tensor.Rational](out, args, parseRat, par) },
			)
		},
	}
	cmd.Flags().StringVar(&typ, "type", "rational", "element type: int, float or rational")
	cmd.Flags().BoolVar(&par, "parallel", false, "compute output cells concurrently")
	return cmd
}

func runMatMul[T any, O tensor.Ops[T]](w io.Writer, args []string, parse func(string) (T, error), par bool) error {
	a, err := parseMatrix[T, O](args[0], parse)
	if err != nil {
		return fmt.Errorf("A: %w", err)
	}
	b, err := parseMatrix[T, O](args[1], parse)
	if err != nil {
		return fmt.Errorf("B: %w", err)
	}
	res, err := tensor.MatMul(a, b, lo.Ternary(par, []tensor.Option{tensor.Parallel()}, nil)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}

func newApplyCmd() *cobra.Command {
	var (
		op  string
		typ string
		par bool
	)
	cmd := &cobra.Command{
		Use:     "apply A B",
		Short:   "Apply an element-wise operation to two matrices",
		Example: `  gentensor apply --op div --type rational "1,2;3,4" "2,2;2,2"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return dispatch(typ,
				func() error { return runApply[int, tensor.Int[int]](out, args, strconv.Atoi, op, par) },
				func() error { return runApply[float64, tensor.Float[float64]](out, args, parseFloat, op, par) },
				func() error { return runApply[*big.Rat, tensor.Rational](out, args, parseRat, op, par) },
			)
		},
	}
	cmd.Flags().StringVar(&op, "op", "add", "operation: add, sub, mul or div")
	cmd.Flags().StringVar(&typ, "type", "rational", "element type: int, float or rational")
	cmd.Flags().BoolVar(&par, "parallel", false, "split the rows across goroutines")
	return cmd
}

func runApply[T any, O tensor.Ops[T]](w io.Writer, args []string, parse func(string) (T, error), op string, par bool) error {
	a, err := parseMatrix[T, O](args[0], parse)
	if err != nil {
		return fmt.Errorf("A: %w", err)
	}
	b, err := parseMatrix[T, O](args[1], parse)
	if err != nil {
		return fmt.Errorf("B: %w", err)
	}
	fns := map[string]func(a, b *tensor.Tensor[T, O], opts ...tensor.Option) (*tensor.Tensor[T, O], error){
		"add": tensor.Add[T, O],
		"sub": tensor.Sub[T, O],
		"mul": tensor.Mul[T, O],
		"div": tensor.Div[T, O],
	}
	fn, ok := fns[op]
	if !ok {
		return fmt.Errorf("unknown operation %q (want add, sub, mul or div)", op)
	}
	res, err := fn(a, b, lo.Ternary(par, []tensor.Option{tensor.Parallel()}, nil)...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}
