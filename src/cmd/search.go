package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"highscore/src/search"
	"highscore/src/sort"
)

func CmdSearch() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Action:    searchValues,
		Category:  "TOOL",
		Usage:     "sort a list of values and search it for a target",
		ArgsUsage: "TARGET VALUE...",
		Description: `
The values are sorted ascending with the chosen algorithm, printed with their
indexes, then searched for TARGET with the chosen method.

Examples:
$ highscore search --method jump --block-size 2 --numeric 9 11 3 7 1 9 5
$ highscore search --algorithm natural --method binary bob carol alice bob`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "sort algorithm: bubble, merge or natural",
			},
			&cli.StringFlag{
				Name:  "method",
				Usage: "search method: linear, binary or jump",
			},
			&cli.IntFlag{
				Name:  "block-size",
				Usage: "jump search block size, 0 for floor(sqrt(n))",
			},
			&cli.BoolFlag{
				Name:    "numeric",
				Aliases: []string{"n"},
				Usage:   "compare values as numbers instead of strings",
			},
			&cli.BoolFlag{
				Name:  "descending",
				Usage: "sort descending (linear search only, the others need ascending input)",
			},
		},
	}
}

func searchValues(ctx *cli.Context) error {
	setup(ctx, 2)
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	alg, err := algorithm(ctx, cfg)
	if err != nil {
		return err
	}
	method := cfg.SearchMethod()
	if ctx.IsSet("method") {
		if method, err = search.ParseMethod(ctx.String("method")); err != nil {
			return err
		}
	}
	blockSize := cfg.BlockSize
	if ctx.IsSet("block-size") {
		blockSize = ctx.Int("block-size")
	}
	ascending := !ctx.Bool("descending")
	if !ascending && method.RequiresSorted() {
		return errors.Errorf("%s search needs ascending input", method)
	}

	args := ctx.Args().Slice()
	target, values := args[0], args[1:]
	p := probe[string]{alg: alg, method: method, blockSize: blockSize, ascending: ascending}
	if !ctx.Bool("numeric") {
		p.cmp = sort.Ordered[string]
		return p.run(ctx.App.Writer, target, values)
	}

	nums := make([]float64, len(values))
	for i, v := range values {
		if nums[i], err = strconv.ParseFloat(v, 64); err != nil {
			return errors.Wrapf(err, "value %d", i)
		}
	}
	t, err := strconv.ParseFloat(target, 64)
	if err != nil {
		return errors.Wrap(err, "target")
	}
	np := probe[float64]{alg: alg, method: method, blockSize: blockSize, ascending: ascending, cmp: sort.Ordered[float64]}
	return np.run(ctx.App.Writer, t, nums)
}

type probe[T any] struct {
	alg       sort.Algorithm
	method    search.Method
	blockSize int
	ascending bool
	cmp       sort.CompareFunc[T]
}

func (p probe[T]) run(w io.Writer, target T, values []T) error {
	if err := sort.Slice(p.alg, values, p.cmp, p.ascending); err != nil {
		return err
	}
	for i, v := range values {
		fmt.Fprintf(w, "[%d] %v\n", i, v)
	}
	idx, err := search.Find(p.method, values, target, p.cmp, p.blockSize)
	if err != nil {
		return err
	}
	if idx == search.NotFound {
		fmt.Fprintf(w, "%v not found (%s sort, %s search)\n", target, p.alg, p.method)
		return nil
	}
	fmt.Fprintf(w, "%v found at index %d (%s sort, %s search)\n", target, idx, p.alg, p.method)
	return nil
}
