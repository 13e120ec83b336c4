// Package watch splits MIDI files as they land in a drop directory, such as
// the output folder of a transcription run.
package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/handsplit/util"
	"go.uber.org/zap"
)

// DefaultDelay is how long a file must stay quiet before it is processed.
// Transcribers write MIDI in several bursts.
const DefaultDelay = 500 * time.Millisecond

// Processor handles one settled MIDI file.
type Processor func(ctx context.Context, path string) error

type Options struct {
	Delay time.Duration
	// Backfill processes MIDI files already in the directory on start.
	Backfill bool
	Logger   *zap.Logger
}

type Watcher struct {
	dir     string
	process Processor
	opts    Options

	mu         sync.Mutex
	debouncers map[string]func(func())
	closed     bool
	inflight   sync.WaitGroup
}

func New(dir string, process Processor, opts Options) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if process == nil {
		return nil, errors.New("processor is required")
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Watcher{
		dir:        dir,
		process:    process,
		opts:       opts,
		debouncers: make(map[string]func(func())),
	}, nil
}

// Run watches until ctx is done. It returns after every started Processor
// call has finished.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	w.opts.Logger.Info("watching", zap.String("dir", w.dir), zap.Duration("delay", w.opts.Delay))

	defer w.shutdown()

	if w.opts.Backfill {
		paths, err := util.GatherAllMidiPaths(w.dir, 0)
		if err != nil {
			return err
		}
		for _, path := range paths {
			w.schedule(ctx, path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !util.IsMidiPath(event.Name) || util.IsOutputPath(event.Name) {
				continue
			}
			w.opts.Logger.Debug("midi file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			w.schedule(ctx, event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.opts.Logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	debounced, ok := w.debouncers[path]
	if !ok {
		debounced = debounce.New(w.opts.Delay)
		w.debouncers[path] = debounced
	}
	w.mu.Unlock()

	debounced(func() { w.handle(ctx, path) })
}

func (w *Watcher) handle(ctx context.Context, path string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.inflight.Add(1)
	w.mu.Unlock()
	defer w.inflight.Done()

	start := time.Now()
	if err := w.process(ctx, path); err != nil {
		w.opts.Logger.Error("processing failed", zap.String("path", path), zap.Error(err))
		return
	}
	w.opts.Logger.Info("processed", zap.String("path", path), zap.Duration("took", time.Since(start)))
}

func (w *Watcher) shutdown() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.inflight.Wait()
}
