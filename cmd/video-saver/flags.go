package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/ytget/video-saver/internal/config"
)

func (a *app) SetFlags() {
	a.SetValidateFlags()
	a.SetDownloadFlags()
	a.SetHistoryFlags()
}

func (a *app) SetValidateFlags() {
	a.fsValidate = flag.NewFlagSet("validate", flag.ContinueOnError)
	a.fsValidate.SetOutput(a.errOut)
	a.fsValidate.Usage = func() {
		fmt.Fprintln(a.errOut, "Command validate: check that a link is a supported Facebook video URL")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, " ", a.name(), "validate URL")
		fmt.Fprintln(a.errOut)
	}
	config.RegisterCLIFlags(a.fsValidate)
}

func (a *app) SetDownloadFlags() {
	a.fsDownload = flag.NewFlagSet("download", flag.ContinueOnError)
	a.fsDownload.SetOutput(a.errOut)
	a.fsDownload.StringVarP(&a.Quality, "quality", "q", "", "Quality label, e.g. \"SD (480p)\". Defaults to the best offered.")
	a.fsDownload.Usage = func() {
		fmt.Fprintln(a.errOut, "Command download: fetch video details, simulate the download and record it in history")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, " ", a.name(), "download [ options... ] URL")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, "  example:  ", a.name(), "download --quality \"Low (360p)\" https://fb.watch/abc123")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, "  options:")
		a.fsDownload.PrintDefaults()
		fmt.Fprintln(a.errOut)
	}
	config.RegisterCLIFlags(a.fsDownload)
}

func (a *app) SetHistoryFlags() {
	a.fsHistory = flag.NewFlagSet("history", flag.ContinueOnError)
	a.fsHistory.SetOutput(a.errOut)
	a.fsHistory.BoolVar(&a.YAML, "yaml", false, "Print the history list as YAML.")
	a.fsHistory.Usage = func() {
		fmt.Fprintln(a.errOut, "Command history: show or edit the download history")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, " ", a.name(), "history list [ --yaml ]")
		fmt.Fprintln(a.errOut, " ", a.name(), "history remove ID")
		fmt.Fprintln(a.errOut, " ", a.name(), "history clear")
		fmt.Fprintln(a.errOut)
		fmt.Fprintln(a.errOut, "  options:")
		a.fsHistory.PrintDefaults()
		fmt.Fprintln(a.errOut)
	}
	config.RegisterCLIFlags(a.fsHistory)
}

func (a *app) name() string {
	return "video-saver"
}

func (a *app) Usage() {
	fmt.Fprintf(a.errOut, "Usage of %s:\n\n", a.name())
	a.fsValidate.Usage()
	a.fsDownload.Usage()
	a.fsHistory.Usage()
}
