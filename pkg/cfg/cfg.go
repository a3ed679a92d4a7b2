// Package cfg loads configuration structs from layered sources.
package cfg

import (
	"strings"

	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Source is a configuration source. It is passed a pointer to the
// destination and may overwrite any part of it, including values set by
// earlier sources.
type Source func(interface{}) error

// Unmarshal applies the sources to dst in order.
func Unmarshal(dst interface{}, sources ...Source) error {
	if len(sources) == 0 {
		panic("no sources supplied to cfg.Unmarshal")
	}
	for _, source := range sources {
		if err := source(dst); err != nil {
			return errors.Wrap(err, "sourcing")
		}
	}
	return nil
}

// Defaults sets the flag defaults of dst, which must implement
// flagext.Registerer.
func Defaults() Source {
	return func(dst interface{}) error {
		r, ok := dst.(flagext.Registerer)
		if !ok {
			return errors.Errorf("%T does not register flags", dst)
		}
		flagext.DefaultValues(r)
		return nil
	}
}

// YAML unmarshals y into dst. Unknown fields are an error.
func YAML(y []byte) Source {
	return func(dst interface{}) error {
		return yaml.UnmarshalStrict(y, dst)
	}
}

// YAMLFiles reads each file from fs in turn and unmarshals it into dst, so
// later files override earlier ones.
func YAMLFiles(fs afero.Fs, files Files) Source {
	return func(dst interface{}) error {
		for _, f := range files {
			y, err := afero.ReadFile(fs, f)
			if err != nil {
				return errors.Wrap(err, "reading config file")
			}
			if err := YAML(y)(dst); err != nil {
				return errors.Wrapf(err, "parsing config file %s", f)
			}
		}
		return nil
	}
}

// Files is a repeatable flag value holding config file paths. A single value
// may also list several files separated by commas.
type Files []string

func (f *Files) String() string {
	return strings.Join(*f, ",")
}

func (f *Files) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*f = append(*f, v)
		}
	}
	return nil
}

// IsCumulative lets kingpin accept the flag more than once.
func (f *Files) IsCumulative() bool { return true }
