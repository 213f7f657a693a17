package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
	"q.log/dualsimplex/instance"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/simplex"
)

const about = `Solves linear programs of the form

    min b'y  s.t.  y'A = c, y >= 0

and, when a solution exists, also

    max c'x  s.t.  Ax <= b

PATH is a directory holding A.txt, b.txt and c.txt (comma separated rows),
or a free MPS file when --mps is given.`

// defaultTolerance absorbs rounding in the sign tests of the solver.
const defaultTolerance = 1e-9

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("dualsimplex")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "dualsimplex [flags] PATH",
		Short:         "Two-phase dual simplex solver",
		Long:          about,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], v)
			if _, ok := err.(simplex.Invalid); !ok && err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.Bool("mps", false, "read PATH as a free MPS file")
	flags.Float64("tolerance", defaultTolerance, "tolerance of the sign tests, 0 for exact tests")
	flags.BoolP("verbose", "v", false, "print the problem and trace the pivots on stderr")
	flags.Int("precision", -1, "digits printed after the decimal point, -1 for the shortest exact form")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	return cmd
}

func run(stdout, stderr io.Writer, path string, v *viper.Viper) error {
	r := instance.NewReader(path)
	var (
		p   *model.Problem
		err error
	)
	if v.GetBool("mps") {
		p, err = r.ReadMPS()
	} else {
		p, err = r.ReadDir()
	}
	if err != nil {
		return err
	}

	opts := []simplex.Option{simplex.WithTolerance(v.GetFloat64("tolerance"))}
	if v.GetBool("verbose") {
		p.Fprint(stderr)
		opts = append(opts, simplex.WithLogger(log.New(stderr, "", 0)))
	}
	s, err := simplex.New(opts...)
	if err != nil {
		return err
	}

	out := s.Solve(p)
	printOutcome(stdout, p, out, v.GetInt("precision"))
	if inv, ok := out.(simplex.Invalid); ok {
		return inv
	}
	return nil
}

func printOutcome(w io.Writer, p *model.Problem, out simplex.Outcome, prec int) {
	opt, ok := out.(simplex.Optimal)
	if !ok {
		fmt.Fprintln(w, out)
		return
	}

	value := opt.Value
	if p.Minimize {
		value = -value
	}
	fmt.Fprintln(w, "Optimal solution found:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Value: %s\n\n", formatFloat(value, prec))
	fmt.Fprintf(w, "y' = %v\n", formatted(opt.Y.T(), prec))
	fmt.Fprintf(w, "x' = %v\n", formatted(opt.X.T(), prec))
	fmt.Fprintf(w, "B = %v\n", []int(opt.Basis))
}

func formatted(m mat.Matrix, prec int) string {
	fm := mat.Formatted(m, mat.Squeeze())
	if prec < 0 {
		return fmt.Sprintf("%v", fm)
	}
	return fmt.Sprintf("%.*f", prec, fm)
}

func formatFloat(f float64, prec int) string {
	if prec < 0 {
		return fmt.Sprint(f)
	}
	return fmt.Sprintf("%.*f", prec, f)
}
