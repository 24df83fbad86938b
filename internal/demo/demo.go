// Package demo implements the orderkit command line interface.
package demo

import (
	"cmp"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/orderkit/pkg/container"
	"go.llib.dev/orderkit/pkg/permutation"
)

const (
	// ErrInvalidValue is returned when a positional value can't be parsed as the selected type.
	ErrInvalidValue errorkit.Error = "ErrInvalidValue"
	// ErrNoValues is returned when the command receives no positional values.
	ErrNoValues errorkit.Error = "ErrNoValues"
)

// Config is the environment based configuration of the command.
type Config struct {
	Order    string `env:"ORDERKIT_ORDER" default:"insertion"`
	LogLevel string `env:"ORDERKIT_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

func (c Config) Level() logging.Level { return logging.Level(c.LogLevel) }

// Command prints the given values in one or every traversal order.
type Command struct {
	Order string `flag:"order" desc:"traversal order: ascending, descending, insertion, reverse, side-cross, middle-out"`
	All   bool   `flag:"all" desc:"print the values in every traversal order"`
	Type  string `flag:"type" default:"int" enum:"int,float,string," desc:"element type of the values"`

	// DefaultOrder is used when no order flag is given.
	DefaultOrder string
	Logger       *logging.Logger
}

func (cmd Command) Summary() string {
	return "prints values in the supported traversal orders"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Fields{
		"type":  cmd.Type,
		"count": len(r.Args),
	})
	if err := cmd.run(w, r.Args); err != nil {
		cmd.logger().Warn(ctx, "orderkit command failed", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(stderr(w), err.Error())
		return
	}
	cmd.logger().Debug(ctx, "orderkit command finished")
}

func (cmd Command) run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provide at least one value", ErrNoValues)
	}
	orders, err := cmd.orders()
	if err != nil {
		return err
	}
	switch cmd.Type {
	case "float":
		return render[float64](w, args, orders)
	case "string":
		return render[string](w, args, orders)
	default:
		return render[int](w, args, orders)
	}
}

func (cmd Command) orders() ([]permutation.Order, error) {
	if cmd.All {
		return permutation.Orders(), nil
	}
	raw := cmd.Order
	if raw == "" {
		raw = cmd.DefaultOrder
	}
	if raw == "" {
		return []permutation.Order{permutation.Insertion}, nil
	}
	order, err := permutation.ParseOrder(raw)
	if err != nil {
		return nil, err
	}
	return []permutation.Order{order}, nil
}

func (cmd Command) logger() *logging.Logger {
	if cmd.Logger != nil {
		return cmd.Logger
	}
	return &logging.Logger{Out: io.Discard}
}

// stderr is the error output of the response when it has one.
func stderr(w cli.Response) io.Writer {
	if ew, ok := w.(interface{ Stderr() io.Writer }); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return w
}

func render[T cmp.Ordered](w io.Writer, args []string, orders []permutation.Order) error {
	var c container.Container[T]
	for _, raw := range args {
		v, err := convkit.Parse[T](raw)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidValue, raw, err)
		}
		c.Add(v)
	}
	if _, err := fmt.Fprintln(w, c.String()); err != nil {
		return err
	}
	for _, order := range orders {
		vs, err := iterkit.CollectE(c.Traverse(order))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", order, container.Of(vs...)); err != nil {
			return err
		}
	}
	return nil
}
