package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/grafana/otlpcodec/pkg/otlp/logs"
	"github.com/grafana/otlpcodec/pkg/otlp/metrics"
	"github.com/grafana/otlpcodec/pkg/otlp/otlpjson"
	"github.com/grafana/otlpcodec/pkg/otlp/trace"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

// dumpCommand writes a request body as OTLP/JSON to stdout.
type dumpCommand struct {
	opts *options
	file string
}

func addDumpCommand(app *kingpin.Application, opts *options) {
	cmd := &dumpCommand{opts: opts}
	c := app.Command("dump", "Print a request body as OTLP/JSON.")
	c.Arg("file", "File holding a request body.").Required().ExistingFileVar(&cmd.file)
	c.Action(cmd.run)
}

func (cmd *dumpCommand) run(_ *kingpin.ParseContext) error {
	in, err := newInspector(afero.NewOsFs(), cmd.opts, true)
	if err != nil {
		exitWithErr(err)
	}
	res, err := in.check(context.Background(), cmd.file)
	if err != nil {
		exitWithErr(err)
	}

	switch req := res.Request.(type) {
	case *metrics.ExportMetricsServiceRequest:
		err = otlpjson.WriteMetrics(os.Stdout, req)
	case *logs.ExportLogsServiceRequest:
		err = otlpjson.WriteLogs(os.Stdout, req)
	case *trace.ExportTraceServiceRequest:
		err = otlpjson.WriteTraces(os.Stdout, req)
	}
	if err != nil {
		exitWithErr(fmt.Errorf("failed to write json: %w", err))
	}
	return nil
}

// reencodeCommand decodes a request body and reports whether encoding it
// again yields the same bytes.
type reencodeCommand struct {
	opts   *options
	file   string
	output string
}

func addReencodeCommand(app *kingpin.Application, opts *options) {
	cmd := &reencodeCommand{opts: opts}
	c := app.Command("reencode", "Decode and re-encode a request body, and compare the result with the input.")
	c.Arg("file", "File holding a request body.").Required().ExistingFileVar(&cmd.file)
	c.Flag("output", "Write the re-encoded body to this file.").StringVar(&cmd.output)
	c.Action(cmd.run)
}

func (cmd *reencodeCommand) run(_ *kingpin.ParseContext) error {
	in, err := newInspector(afero.NewOsFs(), cmd.opts, true)
	if err != nil {
		exitWithErr(err)
	}
	res, err := in.check(context.Background(), cmd.file)
	if err != nil {
		exitWithErr(err)
	}
	original := res.Body

	encoded := wire.Marshal(res.Request)
	if cmd.output != "" {
		if err := os.WriteFile(cmd.output, encoded, 0o644); err != nil {
			exitWithErr(fmt.Errorf("failed to write output: %w", err))
		}
	}

	if bytes.Equal(original, encoded) {
		color.New(color.FgGreen).Printf("identical: %d bytes\n", len(encoded))
		return nil
	}
	offset := 0
	for offset < len(original) && offset < len(encoded) && original[offset] == encoded[offset] {
		offset++
	}
	color.New(color.FgYellow).Printf("differs at offset %d: %d bytes in, %d bytes out\n", offset, len(original), len(encoded))
	return nil
}
