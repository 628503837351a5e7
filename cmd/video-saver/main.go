package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ytget/video-saver/internal/config"
	"github.com/ytget/video-saver/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type app struct {
	// CLI flags
	Quality string // download: quality label, default is the first offered
	YAML    bool   // history list: print YAML

	cfg    *config.CLIConfig
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer

	fsValidate *flag.FlagSet
	fsDownload *flag.FlagSet
	fsHistory  *flag.FlagSet
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		out:    out,
		errOut: errOut,
		logger: zap.NewNop(),
	}
	a.SetFlags()
	return a
}

func main() {
	fmt.Fprintf(os.Stderr, "%s: %v, commit %v, built at %v\n", filepath.Base(os.Args[0]), version, commit, date)

	// trap Ctrl+C and cancel the running command
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run parses args and executes one command, returning the exit code
func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.Usage()
		return exitUsage
	}

	command, rest := args[0], args[1:]
	var fs *flag.FlagSet
	switch command {
	case "validate":
		fs = a.fsValidate
	case "download":
		fs = a.fsDownload
	case "history":
		fs = a.fsHistory
	case "help", "-h", "--help":
		a.Usage()
		return exitOK
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", command)
		a.Usage()
		return exitUsage
	}

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(a.errOut, err)
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadCLI(fs)
	if err != nil {
		fmt.Fprintln(a.errOut, "Error:", err)
		return exitError
	}
	a.cfg = cfg

	l, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(a.errOut, "Error: can't init logger:", err)
		return exitError
	}
	a.logger = l
	defer logger.Sync(l)

	switch command {
	case "validate":
		err = a.validate(fs.Args())
	case "download":
		err = a.download(ctx, fs.Args())
	case "history":
		err = a.history(fs.Args())
	}

	if err != nil {
		fmt.Fprintln(a.errOut, "Error:", err)
		return exitError
	}
	return exitOK
}
