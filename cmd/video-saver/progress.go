package main

import (
	"context"
	"io"

	"github.com/vbauerster/mpb/v6"
	"github.com/vbauerster/mpb/v6/decor"
)

// progressBar shows the progress of one download
type progressBar interface {
	SetPercent(percent float64)
	Complete()
	Abort()
	Wait()
}

type barContainer struct {
	pb  *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar(ctx context.Context, out io.Writer, name string) progressBar {
	pb := mpb.NewWithContext(ctx,
		mpb.WithWidth(64),
		mpb.WithOutput(out),
	)
	bar := pb.AddBar(100,
		mpb.BarWidth(40),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: 30, C: decor.DidentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &barContainer{pb: pb, bar: bar}
}

func (b *barContainer) SetPercent(percent float64) {
	b.bar.SetCurrent(int64(percent))
}

func (b *barContainer) Complete() {
	b.bar.SetTotal(100, true)
}

func (b *barContainer) Abort() {
	b.bar.Abort(false)
}

func (b *barContainer) Wait() {
	b.pb.Wait()
}

// nullBar is used in headless mode
type nullBar struct{}

func (nullBar) SetPercent(float64) {}
func (nullBar) Complete()          {}
func (nullBar) Abort()             {}
func (nullBar) Wait()              {}
