package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/grafana/otlpcodec/pkg/otlp"
	"github.com/grafana/otlpcodec/pkg/otlp/common"
	"github.com/grafana/otlpcodec/pkg/otlp/logs"
	"github.com/grafana/otlpcodec/pkg/otlp/metrics"
	"github.com/grafana/otlpcodec/pkg/otlp/trace"
)

// statsCommand prints item counts per resource and scope for each file.
type statsCommand struct {
	opts  *options
	files []string
}

func addStatsCommand(app *kingpin.Application, opts *options) {
	cmd := &statsCommand{opts: opts}
	c := app.Command("stats", "Print item counts per resource and scope.")
	c.Arg("file", "Files holding request bodies.").Required().ExistingFilesVar(&cmd.files)
	c.Action(cmd.run)
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	in, err := newInspector(afero.NewOsFs(), cmd.opts, true)
	if err != nil {
		exitWithErr(err)
	}
	for _, name := range cmd.files {
		res, err := in.check(context.Background(), name)
		if err != nil {
			exitWithErr(fmt.Errorf("%s: %w", name, err))
		}
		cmd.printStats(name, res.Request)
		fmt.Printf(
			"\ttotal: %d items, %v received, %v decoded\n",
			res.Stats.Items,
			humanize.Bytes(uint64(res.Stats.BodySize)),
			humanize.Bytes(uint64(res.Stats.DecodedSize)),
		)
	}
	return nil
}

func (cmd *statsCommand) printStats(name string, req otlp.Request) {
	bold := color.New(color.Bold)
	bold.Printf("%s:\n", name)

	switch req := req.(type) {
	case *metrics.ExportMetricsServiceRequest:
		for _, rm := range req.ResourceMetrics {
			printResource(rm.Resource, rm.SchemaURL)
			for _, sm := range rm.ScopeMetrics {
				printScope(sm.Scope, "metrics", len(sm.Metrics))
				for _, m := range sm.Metrics {
					fmt.Printf("\t\t\t%s: %d data points\n", m.Name, m.DataPointCount())
				}
			}
		}
	case *logs.ExportLogsServiceRequest:
		for _, rl := range req.ResourceLogs {
			printResource(rl.Resource, rl.SchemaURL)
			for _, sl := range rl.ScopeLogs {
				printScope(sl.Scope, "log records", len(sl.LogRecords))
			}
		}
	case *trace.ExportTraceServiceRequest:
		for _, rs := range req.ResourceSpans {
			printResource(rs.Resource, rs.SchemaURL)
			for _, ss := range rs.ScopeSpans {
				printScope(ss.Scope, "spans", len(ss.Spans))
			}
		}
	}
}

func printResource(r *common.Resource, schemaURL string) {
	service := r.ServiceName()
	if service == "" {
		service = "<unknown service>"
	}
	fmt.Printf("\tresource %s", service)
	if schemaURL != "" {
		fmt.Printf(" (%s)", schemaURL)
	}
	fmt.Println()
}

func printScope(s *common.InstrumentationScope, kind string, n int) {
	name := "<unnamed scope>"
	if s != nil && s.Name != "" {
		name = s.Name
		if s.Version != "" {
			name += "@" + s.Version
		}
	}
	fmt.Printf("\t\tscope %s: %d %s\n", name, n, kind)
}
