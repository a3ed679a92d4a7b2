package ingest

import (
	"errors"
	"flag"

	"github.com/grafana/dskit/flagext"
)

// Config configures a Checker.
type Config struct {
	MaxRecvMsgSize        flagext.Bytes `yaml:"max_recv_msg_size"`
	MaxDecompressedSize   flagext.Bytes `yaml:"max_decompressed_size"`
	SkipValidation        bool          `yaml:"skip_validation"`
	LogRequestFingerprint bool          `yaml:"log_request_fingerprint"`
}

// RegisterFlags registers flags with the "otlp." prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("otlp.", f)
}

// RegisterFlagsWithPrefix registers flags with the given prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	_ = cfg.MaxRecvMsgSize.Set("4MB")
	_ = cfg.MaxDecompressedSize.Set("64MB")

	f.Var(&cfg.MaxRecvMsgSize, prefix+"max-recv-msg-size", "Maximum size of a request body as received, before decompression.")
	f.Var(&cfg.MaxDecompressedSize, prefix+"max-decompressed-size", "Maximum size of a request body after decompression.")
	f.BoolVar(&cfg.SkipValidation, prefix+"skip-validation", false, "Only decode requests, without checking schema URLs and metric names.")
	f.BoolVar(&cfg.LogRequestFingerprint, prefix+"log-request-fingerprint", false, "Compute a hash of every decompressed body and include it in the request log line.")
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	var errs []error

	if cfg.MaxRecvMsgSize <= 0 {
		errs = append(errs, errors.New("MaxRecvMsgSize must be greater than 0"))
	}

	if cfg.MaxDecompressedSize <= 0 {
		errs = append(errs, errors.New("MaxDecompressedSize must be greater than 0"))
	} else if cfg.MaxDecompressedSize < cfg.MaxRecvMsgSize {
		errs = append(errs, errors.New("MaxDecompressedSize must be greater than or equal to MaxRecvMsgSize"))
	}

	return errors.Join(errs...)
}
