package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/grafana/otlpcodec/pkg/otlp/ingest"
)

// checkCommand decodes and validates each file and prints a verdict.
type checkCommand struct {
	opts        *options
	files       []string
	concurrency int
}

func addCheckCommand(app *kingpin.Application, opts *options) {
	cmd := &checkCommand{opts: opts}
	c := app.Command("check", "Decode and validate request bodies.")
	c.Arg("file", "Files holding request bodies.").Required().ExistingFilesVar(&cmd.files)
	c.Flag("concurrency", "Number of files checked at once.").Default("4").IntVar(&cmd.concurrency)
	c.Action(cmd.run)
}

type checkOutcome struct {
	res *ingest.Result
	err error
}

func (cmd *checkCommand) run(_ *kingpin.ParseContext) error {
	in, err := newInspector(afero.NewOsFs(), cmd.opts, false)
	if err != nil {
		exitWithErr(err)
	}

	outcomes := checkFiles(context.Background(), in, cmd.files, cmd.concurrency)

	ok := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)

	failed := 0
	for i, name := range cmd.files {
		res, err := outcomes[i].res, outcomes[i].err
		if err != nil {
			failed++
			fail.Print("FAIL ")
			fmt.Printf("%s: %v (%s)\n", name, err, ingest.ReasonForError(err))
			level.Debug(logger).Log("msg", "check failed", "file", name, "err", err)
			continue
		}
		ok.Print("OK   ")
		fmt.Printf(
			"%s: %s, %d items, %v received, %v decoded\n",
			name,
			res.Stats.Signal,
			res.Stats.Items,
			humanize.Bytes(uint64(res.Stats.BodySize)),
			humanize.Bytes(uint64(res.Stats.DecodedSize)),
		)
	}

	if failed > 0 {
		exitWithErr(fmt.Errorf("%d of %d files failed", failed, len(cmd.files)))
	}
	return nil
}

// checkFiles checks files with at most concurrency checks in flight. The
// outcomes are in the order of files.
func checkFiles(ctx context.Context, in *inspector, files []string, concurrency int) []checkOutcome {
	outcomes := make([]checkOutcome, len(files))

	var g errgroup.Group
	g.SetLimit(max(concurrency, 1))
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			res, err := in.check(ctx, name)
			outcomes[i] = checkOutcome{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
