package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/michalsrutek/arrow"
	"github.com/michalsrutek/arrow/decoder"
	"github.com/michalsrutek/arrow/internal/config"
)

// Version information
const Version = "0.1.0"

var errNoConversion = errors.New("no conversion")

// CLI defines the command-line interface
type CLI struct {
	Version kong.VersionFlag `help:"Show version information." short:"v"`
	Probe   ProbeCmd         `cmd:"" help:"Decode JSON, select a node and print it coerced to a type."`
}

// Context holds the runtime context
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Dir    string
}

// ProbeCmd coerces a single JSON node
type ProbeCmd struct {
	Input         string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Path          string `help:"Node path, e.g. users[0].address.city or meta[\"a.b\"]." short:"p"`
	As            string `help:"Target type." short:"a" enum:"string,int,uint,float,bool,date,url" default:"string"`
	Slice         bool   `help:"Coerce an array of the target type." short:"s"`
	DateFormat    string `help:"Unicode date pattern for string dates, e.g. yyyy-MM-dd." short:"f"`
	ReferenceDate *bool  `help:"Interpret numeric timestamps relative to 2001-01-01T00:00:00Z, overrides the defaults file." short:"r" negatable:""`
	ExactNumbers  *bool  `help:"Decode numbers exactly instead of as float64, overrides the defaults file." short:"e" negatable:""`
	Config        string `help:"Path to YAML defaults file, searched as .arrow.yml upwards when not specified." short:"c" type:"path"`
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func main() {
	cli := &CLI{}
	parser := kong.Must(cli,
		kong.Name("arrow"),
		kong.Description("A tool to probe type-directed coercion of JSON documents"),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	dir, err := os.Getwd()
	parser.FatalIfErrorf(err)
	err = ctx.Run(&Context{Stdin: os.Stdin, Stdout: os.Stdout, Dir: dir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// Run executes probe command
func (p *ProbeCmd) Run(ctx *Context) error {
	cfg, err := p.loadConfig(ctx.Dir)
	if err != nil {
		return err
	}
	data, err := p.readInput(ctx.Stdin)
	if err != nil {
		return err
	}
	options := []decoder.Option{decoder.WithConfig(cfg.ArrowConfig())}
	if cfg.ExactNumbers {
		options = append(options, decoder.WithExactNumbers())
	}
	value, err := decoder.Decode(data, options...)
	if err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	if p.Path != "" {
		value = value.Path(p.Path)
	}
	result, ok := coerce(value, p.As, p.Slice)
	if !ok {
		return fmt.Errorf("%w: %s node at %q as %s", errNoConversion, value.Kind(), p.Path, p.describeTarget())
	}
	dumper.Fdump(ctx.Stdout, result)
	return nil
}

func (p *ProbeCmd) describeTarget() string {
	if p.Slice {
		return "[]" + p.As
	}
	return p.As
}

func (p *ProbeCmd) loadConfig(dir string) (*config.Config, error) {
	cfg := config.NewConfig()
	location := p.Config
	if location == "" && dir != "" {
		location = config.FindConfigFile(dir)
	}
	if location != "" {
		loaded, err := config.LoadConfig(location)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if p.DateFormat != "" {
		cfg.DateFormat = p.DateFormat
	}
	if p.ReferenceDate != nil {
		cfg.UseReferenceDate = *p.ReferenceDate
	}
	if p.ExactNumbers != nil {
		cfg.ExactNumbers = *p.ExactNumbers
	}
	return cfg, nil
}

func (p *ProbeCmd) readInput(stdin io.Reader) ([]byte, error) {
	if p.Input != "" {
		data, err := os.ReadFile(p.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	}
	if stdin == nil {
		return nil, decoder.ErrEmptyInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return data, nil
}

func coerce(value arrow.Value, as string, slice bool) (interface{}, bool) {
	switch as {
	case "string":
		return probe[string](value, slice, arrow.ScalarRule[string])
	case "int":
		return probe[int64](value, slice, arrow.ScalarRule[int64])
	case "uint":
		return probe[uint64](value, slice, arrow.ScalarRule[uint64])
	case "float":
		return probe[float64](value, slice, arrow.ScalarRule[float64])
	case "bool":
		return probe[bool](value, slice, arrow.ScalarRule[bool])
	case "date":
		return probe[time.Time](value, slice, arrow.DateRule)
	case "url":
		return probe[url.URL](value, slice, arrow.URLRule)
	}
	return nil, false
}

func probe[T any](value arrow.Value, slice bool, rule arrow.Rule[T]) (interface{}, bool) {
	if slice {
		var result *[]T
		arrow.ParseOptionalWith(&result, value, arrow.SliceRule[T](rule))
		if result == nil {
			return nil, false
		}
		return *result, true
	}
	var result *T
	arrow.ParseOptionalWith(&result, value, rule)
	if result == nil {
		return nil, false
	}
	return *result, true
}
