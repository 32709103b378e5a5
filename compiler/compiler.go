package compiler

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/format"
	"github.com/slowlang/kws/compiler/kws"
	"github.com/slowlang/kws/compiler/parse"
)

type (
	Options struct {
		// Definition gives the file function a context parameter.
		Definition bool

		// Jobs limits the number of files checked at once. 0 is no limit.
		Jobs int
	}

	// Unit is one checked file.
	Unit struct {
		Name    string
		Factory *kws.Factory

		// Diags are in report order.
		Diags []diag.Diagnostic
	}
)

func CheckFile(ctx context.Context, name string, opts Options) (*Unit, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Check(ctx, name, text, opts)
}

// Check assembles text and verifies it.
// Verifier findings are returned in Unit.Diags, err is only for text that can't be read.
func Check(ctx context.Context, name string, text []byte, opts Options) (u *Unit, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "check", "name", name)
	defer tr.Finish("err", &err)

	var list diag.List

	sink := diag.Logger{
		Span: tr.V("diag"),
		Next: &list,
	}

	fc := kws.NewFactory(sink, opts.Definition)

	err = parse.Assemble(ctx, fc, name, text)
	if err != nil {
		return nil, errors.Wrap(err, "assemble")
	}

	u = &Unit{
		Name:    name,
		Factory: fc,
		Diags:   list.Diagnostics(),
	}

	if tr.If("dump_ir") {
		b, err := format.Format(ctx, nil, fc)
		tr.Printw("ir", "text", b, "err", err)
	}

	tr.Printw("checked", "funcs", len(fc.Funcs()), "diagnostics", len(u.Diags))

	return u, nil
}

// CheckFiles checks every file as a separate unit.
// Diagnostics of all the units are merged in location order.
func CheckFiles(ctx context.Context, names []string, opts Options) (_ []*Unit, _ []diag.Diagnostic, err error) {
	units := make([]*Unit, len(names))

	g, gctx := errgroup.WithContext(ctx)

	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}

	for i, name := range names {
		g.Go(func() error {
			u, err := CheckFile(gctx, name, opts)
			if err != nil {
				return errors.Wrap(err, "%v", name)
			}

			units[i] = u

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return nil, nil, err
	}

	lists := make([][]diag.Diagnostic, len(units))

	for i, u := range units {
		lists[i] = u.Diags
	}

	return units, diag.Merge(lists...), nil
}
