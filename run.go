package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goKeyTouch/input"
	"github.com/goKeyTouch/keymaps"
	"github.com/goKeyTouch/overlay"
	"github.com/goKeyTouch/remap"
	"github.com/goKeyTouch/touch"
)

type runOptions struct {
	grab     bool
	fallback bool
	noWatch  bool
}

func NewRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the key to touch service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runService(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.grab, "grab", false, "Grab keyboards exclusively and pass unmapped keys through")
	cmd.Flags().BoolVar(&opts.fallback, "mouse-fallback", false, "Click with a virtual pointer instead of touching")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "Do not reload the mapping file when it changes")

	return cmd
}

// app carries out the hotkeys that reach outside the engine.
type app struct {
	out     io.Writer
	engine  *remap.Engine
	router  *remap.Router
	overlay *overlay.Console
	cancel  context.CancelFunc
}

func (a *app) ToggleOverlay() bool {
	return a.overlay.Toggle()
}

func (a *app) ShowHelp() {
	remap.WriteHelp(a.out, a.router, input.KeyName)
}

func (a *app) ShowStatus() {
	st := a.engine.Status()
	st.Overlay = a.overlay.Visible()
	remap.WriteStatus(a.out, st)
}

func (a *app) Quit() {
	log.Info().Msg("quit requested")
	a.cancel()
}

func runService(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	cfg := root.cfg
	if cmd.Flags().Changed("grab") {
		cfg.Grab = opts.grab
	}
	if opts.noWatch {
		cfg.WatchMappings = false
	}

	logFile, err := setupLogging(cmd.ErrOrStderr(), cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.LogFile).Msg("logging to console only")
	} else {
		defer logFile.Close()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Starting key to touch service...")

	bounds := keymaps.Bounds{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	store := keymaps.NewStore(cfg.MappingFile)
	table := keymaps.NewTable(bounds)

	snap, err := store.Load()
	if err != nil {
		// The session carries on with what is in memory.
		log.Error().Err(err).Msg("failed to load mappings")
	}
	if dropped := table.Replace(snap); dropped > 0 {
		log.Warn().Int("dropped", dropped).Msg("skipped invalid mappings")
	}

	pointer := input.NewPointerTracker(bounds)
	source := input.NewSource(input.Options{
		Devices:    cfg.Devices,
		Grab:       cfg.Grab,
		UinputPath: cfg.UinputPath,
		Pointer:    pointer,
	})
	if err := source.Open(); err != nil {
		return fmt.Errorf("failed to open input devices: %w", err)
	}
	defer source.Close()
	log.Info().Int("devices", len(source.Devices())).Msg("found input devices")

	injector, err := touch.NewUinputInjector(touch.UinputOptions{
		Path:          cfg.UinputPath,
		Width:         cfg.Screen.Width,
		Height:        cfg.Screen.Height,
		ForceFallback: opts.fallback,
		Pointer:       pointer,
	})
	if err != nil {
		return fmt.Errorf("failed to create touch device: %w", err)
	}
	defer injector.Close()
	contacts := touch.NewManager(injector, cfg.TapHold)

	console := overlay.NewConsole(out)
	console.UpdateMappings(table.Snapshot())

	publisher := keymaps.NewPublisher(
		func(s keymaps.Snapshot) {
			if err := store.Save(s); err != nil {
				log.Error().Err(err).Msg("failed to save mappings")
			}
		},
		console.UpdateMappings,
	)
	table.Subscribe(publisher.Publish)

	sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	runCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	router := remap.NewRouter(source.Modifiers(), nil)
	a := &app{out: out, router: router, overlay: console, cancel: cancel}
	engine := remap.NewEngine(remap.Options{
		Table:      table,
		Contacts:   contacts,
		Router:     router,
		Pointer:    pointer,
		Label:      input.KeyName,
		Controller: a,
	})
	a.engine = engine
	source.SetHandler(engine)

	pubCtx, stopPublisher := context.WithCancel(context.Background())
	go publisher.Run(pubCtx)

	if cfg.WatchMappings {
		go func() {
			err := store.Watch(runCtx, func(s keymaps.Snapshot) {
				source.Do(func() {
					if dropped := table.Replace(s); dropped > 0 {
						log.Warn().Int("dropped", dropped).Msg("skipped invalid mappings")
					}
				})
			})
			if err != nil {
				log.Warn().Err(err).Msg("not watching mapping file")
			}
		}()
	}

	// A signal goes through the same path as the quit hotkey.
	go func() {
		select {
		case <-sigCtx.Done():
			log.Info().Msg("shutting down")
			if !source.Do(engine.Quit) {
				cancel()
			}
		case <-runCtx.Done():
		}
	}()

	a.ShowHelp()
	a.ShowStatus()

	if err := source.Run(runCtx); err != nil {
		log.Error().Err(err).Msg("input source failed")
	}

	// The dispatch goroutine is gone, so the engine is ours now.
	engine.Shutdown()
	console.Destroy()
	stopPublisher()
	publisher.Wait()

	fmt.Fprintln(out, "Stopped.")
	return nil
}
