package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ytget/video-saver/internal/config"
	"github.com/ytget/video-saver/internal/download"
	"github.com/ytget/video-saver/internal/fetch"
	"github.com/ytget/video-saver/internal/history"
	"github.com/ytget/video-saver/internal/model"
	"github.com/ytget/video-saver/internal/notify"
	"github.com/ytget/video-saver/internal/validation"
)

var errUsage = errors.New("invalid arguments")

// validate prints the recognized link shape
func (a *app) validate(args []string) error {
	if len(args) != 1 {
		a.fsValidate.Usage()
		return errUsage
	}
	url, err := validation.Validate(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\t%s\n", validation.Detect(url), url)
	return nil
}

// openHistory opens the history stored in the state file
func (a *app) openHistory() (*history.Store, error) {
	state, err := config.OpenStateFile(a.cfg.StateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", history.ErrStorageUnavailable, err)
	}
	return history.Open(state,
		history.WithCapacity(a.cfg.HistoryLimit),
		history.WithLogger(a.logger),
	)
}

// download fetches the video details and runs one simulated download
func (a *app) download(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.fsDownload.Usage()
		return errUsage
	}
	url, err := validation.Validate(args[0])
	if err != nil {
		return err
	}

	store, err := a.openHistory()
	if err != nil {
		return err
	}

	fetcher := fetch.NewSimulator(fetch.WithLatency(a.cfg.FetchLatency), fetch.WithLogger(a.logger))
	meta, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", meta.Title, meta.Duration)

	quality := a.Quality
	if quality == "" {
		if q, ok := meta.DefaultQuality(); ok {
			quality = q.Quality
		}
	}

	dispatcher := notify.NewDispatcher()
	unsubscribe := dispatcher.Subscribe(func(evt notify.CompletionEvent) {
		fmt.Fprintln(a.out, evt.Message())
	})
	defer unsubscribe()

	svc := download.NewService(
		download.NewSimulator(download.WithTickInterval(a.cfg.ProgressTick)),
		store, dispatcher, a.logger,
	)

	var bar progressBar = nullBar{}
	if !a.cfg.Headless {
		bar = newProgressBar(ctx, a.errOut, truncate(meta.Title+" "+quality, 30))
	}
	svc.SetUpdateCallback(func(task model.DownloadTask) {
		if task.Status == model.TaskStatusDownloading {
			bar.SetPercent(task.Percent)
		}
	})

	task, err := svc.Start(meta, quality)
	if err != nil {
		if errors.Is(err, download.ErrInvalidQualitySelection) {
			return fmt.Errorf("%w %q, available: %s", err, quality, strings.Join(meta.QualityLabels(), ", "))
		}
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		if err := svc.Cancel(task.ID); err != nil && !errors.Is(err, download.ErrTaskNotActive) {
			a.logger.Warn("can't cancel download", zap.String("task", task.ID), zap.Error(err))
		}
	})
	defer stop()

	final, err := svc.Wait(task.ID)
	if err != nil {
		return err
	}

	switch final.Status {
	case model.TaskStatusCompleted:
		bar.SetPercent(download.CompletePercent)
		bar.Complete()
		bar.Wait()
		return nil
	case model.TaskStatusCancelled:
		bar.Abort()
		bar.Wait()
		return context.Canceled
	default:
		bar.Abort()
		bar.Wait()
		return errors.New(final.LastError)
	}
}

// history dispatches the history subcommands
func (a *app) history(args []string) error {
	if len(args) == 0 {
		a.fsHistory.Usage()
		return errUsage
	}

	store, err := a.openHistory()
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.historyList(store)
	case "remove":
		if len(args) != 2 {
			a.fsHistory.Usage()
			return errUsage
		}
		if _, ok := store.Get(args[1]); !ok {
			fmt.Fprintf(a.out, "no history record with id %s, nothing removed\n", args[1])
			return nil
		}
		if err := store.Remove(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "removed %s\n", args[1])
		return nil
	case "clear":
		n := store.Len()
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "removed %d records\n", n)
		return nil
	default:
		a.fsHistory.Usage()
		return fmt.Errorf("%w: unknown history command %q", errUsage, args[0])
	}
}

func (a *app) historyList(store *history.Store) error {
	records := store.List()

	if a.YAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("can't encode history: %w", err)
		}
		return enc.Close()
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No downloads yet")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQUALITY\tSIZE\tDATE")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Quality, r.Size, r.FormattedDate())
	}
	return w.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
