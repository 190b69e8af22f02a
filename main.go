package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/tebeka/atexit"

	"github.com/jcorbin/gobf/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(logio.NopCloser(os.Stderr))
	atexit.Register(func() { log.Close() })

	var (
		configPath string
		timeout    time.Duration
		timing     bool
		dump       bool
		teeLog     bool
		memSize    uint
		strict     bool
		trace      bool
		outMode    OutputMode
	)
	flag.StringVar(&configPath, "config", "", "read settings from a YAML config file")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&timing, "time", false, "log run duration and instruction count")
	flag.BoolVar(&dump, "dump", false, "dump machine state after running")
	flag.BoolVar(&teeLog, "tee-log", false, "copy program output into the log")
	flag.UintVar(&memSize, "mem", 0, "number of tape cells (default 30000)")
	flag.BoolVar(&strict, "strict", false, "reject non-instruction, non-whitespace characters")
	flag.BoolVar(&trace, "trace", false, "enable instruction trace logging")
	flag.Var(&outMode, "output", "output mode: byte or ansi")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] program.bf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			log.Errorf("%v", err)
			atexit.Exit(log.ExitCode())
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mem":
			cfg.MemorySize = memSize
		case "strict":
			cfg.Strict = strict
		case "trace":
			cfg.Trace = trace
		case "output":
			cfg.Output = outMode
		}
	})

	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	opts := []VMOption{WithOutput(os.Stdout)}
	opts = append(opts, cfg.Options(log.Leveledf(logio.LevelTrace), isTTY)...)
	if teeLog {
		opts = append(opts, WithTee(&logio.Writer{
			Logf:   log.Leveledf(logio.LevelInfo),
			Prefix: "out: ",
		}))
	}
	vm := New(opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if timeout != 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := run(ctx, vm, flag.Arg(0))
	if timing {
		log.Printf(logio.LevelInfo, "Duration: %v, %s instructions",
			time.Since(start), humanize.Comma(int64(vm.Steps())))
	}
	if dump {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}
	log.ErrorIf(err)
	log.ErrorIf(vm.Close())
	atexit.Exit(log.ExitCode())
}

func run(ctx context.Context, vm *VM, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return SourceError{name, err}
	}
	defer f.Close()
	if err := vm.Compile(f); err != nil {
		return err
	}
	return vm.Run(ctx)
}
