package main

import (
	"context"
	"os"

	"github.com/tebeka/atexit"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/kws/compiler"
	"github.com/slowlang/kws/compiler/diag"
	"github.com/slowlang/kws/compiler/format"
)

func main() {
	checkCmd := &cli.Command{
		Name:        "check",
		Description: "assemble and verify kws files, report diagnostics",
		Action:      checkAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("table", false, "print diagnostics as a table"),
			cli.NewFlag("jobs,j", 0, "files checked at once, 0 is no limit"),
		},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "assemble, verify and print kws files in canonical form",
		Action:      fmtAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "kws",
		Description: "kws is a tool for checking kws intermediate representation",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("definition", false, "file functions take a context parameter"),
			cli.NewFlag("verbosity,v", "", "tlog verbosity topics"),
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			checkCmd,
			fmtCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func before(c *cli.Command) error {
	w := tlog.NewConsoleWriter(os.Stderr, tlog.LstdFlags)

	l := tlog.New(w)

	l.SetVerbosity(c.String("verbosity"))

	tlog.DefaultLogger = l

	return nil
}

func checkAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	opts := compiler.Options{
		Definition: c.Bool("definition"),
		Jobs:       c.Int("jobs"),
	}

	_, ds, err := compiler.CheckFiles(ctx, c.Args, opts)
	if err != nil {
		return errors.Wrap(err, "check")
	}

	if c.Bool("table") {
		err = diag.WriteTable(os.Stdout, ds)
	} else {
		err = diag.Write(os.Stdout, ds)
	}
	if err != nil {
		return errors.Wrap(err, "write diagnostics")
	}

	if len(ds) != 0 {
		atexit.Exit(1)
	}

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	opts := compiler.Options{
		Definition: c.Bool("definition"),
	}

	var all []diag.Diagnostic
	var b []byte

	for _, a := range c.Args {
		u, err := compiler.CheckFile(ctx, a, opts)
		if err != nil {
			return errors.Wrap(err, "check %v", a)
		}

		all = append(all, u.Diags...)

		b, err = format.Format(ctx, b[:0], u.Factory)
		if err != nil {
			return errors.Wrap(err, "format %v", a)
		}

		_, err = os.Stdout.Write(b)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	if len(all) != 0 {
		err = diag.Write(os.Stderr, all)
		if err != nil {
			return errors.Wrap(err, "write diagnostics")
		}

		atexit.Exit(1)
	}

	return nil
}
