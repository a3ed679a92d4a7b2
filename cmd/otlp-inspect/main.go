// Command otlp-inspect checks, summarizes and renders OTLP export request
// bodies stored in files.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	"github.com/spf13/afero"

	"github.com/grafana/otlpcodec/pkg/cfg"
	"github.com/grafana/otlpcodec/pkg/otlp"
	"github.com/grafana/otlpcodec/pkg/otlp/ingest"
	"github.com/grafana/otlpcodec/pkg/otlp/wire"
)

var logger = log.NewNopLogger()

// options are the flags shared by every command.
type options struct {
	signal      string
	configFiles cfg.Files
	encoding    string
	delimited   bool
	logLevel    string
}

func main() {
	app := kingpin.New("otlp-inspect", "A tool to inspect OTLP export request bodies.")
	app.Version(version.Print("otlp-inspect"))
	app.HelpFlag.Short('h')

	var opts options
	app.Flag("signal", "Signal of the request bodies (metrics, logs or traces).").Default("metrics").StringVar(&opts.signal)
	app.Flag("config.file", "YAML file with ingest limits. Can be repeated, later files take precedence.").SetValue(&opts.configFiles)
	app.Flag("encoding", "Content-Encoding of the files (identity, gzip, deflate, snappy, zstd or lz4).").Default(ingest.EncodingIdentity).StringVar(&opts.encoding)
	app.Flag("delimited", "Files hold a varint length-prefixed message.").BoolVar(&opts.delimited)
	app.Flag("log.level", "Only log messages with the given severity or above (debug, info, warn, error).").Default("info").StringVar(&opts.logLevel)

	app.PreAction(func(_ *kingpin.ParseContext) error {
		var err error
		logger, err = newLogger(opts.logLevel)
		return err
	})

	addCheckCommand(app, &opts)
	addStatsCommand(app, &opts)
	addDumpCommand(app, &opts)
	addReencodeCommand(app, &opts)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newLogger(lvl string) (log.Logger, error) {
	var filter level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return nil, fmt.Errorf("unrecognized log level %q", lvl)
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, filter)
	return log.With(l, "ts", log.DefaultTimestampUTC), nil
}

// loadConfig returns the ingest config: defaults, overridden by the config
// files in order.
func loadConfig(fs afero.Fs, files cfg.Files) (ingest.Config, error) {
	var conf ingest.Config
	if err := cfg.Unmarshal(&conf, cfg.Defaults(), cfg.YAMLFiles(fs, files)); err != nil {
		return conf, errors.Wrap(err, "loading config")
	}
	return conf, nil
}

// inspector runs the ingest checker over files.
type inspector struct {
	fs      afero.Fs
	opts    *options
	signal  otlp.Signal
	checker *ingest.Checker
}

// newInspector builds an inspector reading config and request files from fs.
func newInspector(fs afero.Fs, opts *options, skipValidation bool) (*inspector, error) {
	signal, err := otlp.ParseSignal(opts.signal)
	if err != nil {
		return nil, err
	}
	conf, err := loadConfig(fs, opts.configFiles)
	if err != nil {
		return nil, err
	}
	if skipValidation {
		conf.SkipValidation = true
	}
	checker, err := ingest.NewChecker(conf, nil, logger)
	if err != nil {
		return nil, err
	}
	return &inspector{fs: fs, opts: opts, signal: signal, checker: checker}, nil
}

// check reads and checks a single file. A non-nil result comes with a nil
// error or a validation error.
func (in *inspector) check(ctx context.Context, name string) (*ingest.Result, error) {
	buf, err := afero.ReadFile(in.fs, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if in.opts.delimited {
		buf, _, err = wire.SplitDelimited(buf)
		if err != nil {
			return nil, fmt.Errorf("failed to read length prefix: %w", err)
		}
	}
	return in.checker.Check(ctx, in.signal, in.opts.encoding, bytes.NewReader(buf))
}

func exitWithErr(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
