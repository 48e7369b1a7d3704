package input

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/bendahl/uinput"
	evdev "github.com/gvalkov/golang-evdev"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/goKeyTouch/keymaps"
)

// Device is an opened evdev input device.
type Device struct {
	Name     string
	Path     string
	Keyboard bool
	Mouse    bool

	dev     *evdev.InputDevice
	grabbed bool
}

// FindDevices opens every keyboard and mouse under /dev/input. When wanted
// is not empty only keyboards with one of those names are kept.
func FindDevices(wanted []string) ([]*Device, error) {
	devFiles, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("failed to list input devices: %w", err)
	}

	var devices []*Device
	for _, path := range devFiles {
		dev, err := evdev.Open(path)
		if err != nil {
			continue
		}

		d := &Device{
			Name:     dev.Name,
			Path:     path,
			Keyboard: hasCode(dev, evdev.EV_KEY, int(keymaps.KeyA)),
			Mouse:    hasCode(dev, evdev.EV_REL, relX),
			dev:      dev,
		}
		if d.Keyboard && len(wanted) > 0 && !contains(wanted, dev.Name) {
			d.Keyboard = false
		}
		if !d.Keyboard && !d.Mouse {
			dev.File.Close()
			continue
		}
		devices = append(devices, d)
	}

	if !hasKeyboard(devices) {
		for _, d := range devices {
			d.Close()
		}
		return nil, errors.New("no suitable keyboard devices found")
	}
	return devices, nil
}

// Close closes the device file.
func (d *Device) Close() error {
	if d.dev == nil || d.dev.File == nil {
		return nil
	}
	return d.dev.File.Close()
}

func hasCode(dev *evdev.InputDevice, evType, code int) bool {
	for _, c := range dev.CapabilitiesFlat[evType] {
		if c == code {
			return true
		}
	}
	return false
}

func hasKeyboard(devices []*Device) bool {
	for _, d := range devices {
		if d.Keyboard {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Options configures a Source.
type Options struct {
	// Devices restricts the keyboards by name. Empty means every keyboard.
	Devices []string
	// Grab takes exclusive hold of the keyboards and re-emits the events
	// the handler passes through on a virtual keyboard.
	Grab       bool
	UinputPath string
	Pointer    *PointerTracker
	Modifiers  *Modifiers
}

type keyEmitter interface {
	KeyDown(key int) error
	KeyUp(key int) error
}

type rawEvent struct {
	dev *Device
	ev  evdev.InputEvent
}

// Source reads every device in its own goroutine and delivers the events,
// in order, on a single dispatch goroutine.
type Source struct {
	opts      Options
	handler   Handler
	modifiers *Modifiers
	pointer   *PointerTracker

	devices  []*Device
	keyboard keyEmitter
	closer   func() error

	events  chan rawEvent
	tasks   chan func()
	stopped chan struct{}
	once    sync.Once

	// keys whose down was muted on a grabbed device; their up is muted too
	muted map[keymaps.Key]bool
}

// NewSource creates a source. Call Open before Run.
func NewSource(opts Options) *Source {
	if opts.Modifiers == nil {
		opts.Modifiers = NewModifiers()
	}
	return &Source{
		opts:      opts,
		modifiers: opts.Modifiers,
		pointer:   opts.Pointer,
		events:    make(chan rawEvent, 64),
		tasks:     make(chan func(), 16),
		stopped:   make(chan struct{}),
		muted:     map[keymaps.Key]bool{},
	}
}

// SetHandler registers the one handler receiving key events.
func (s *Source) SetHandler(h Handler) {
	s.handler = h
}

// Modifiers returns the modifier tracker fed by this source.
func (s *Source) Modifiers() *Modifiers {
	return s.modifiers
}

// Devices returns the opened devices.
func (s *Source) Devices() []*Device {
	return s.devices
}

// Open finds the devices, grabs the keyboards if requested and creates the
// pass-through keyboard.
func (s *Source) Open() error {
	devices, err := FindDevices(s.opts.Devices)
	if err != nil {
		return err
	}
	s.devices = devices

	if !s.opts.Grab {
		return nil
	}

	path := s.opts.UinputPath
	if path == "" {
		path = "/dev/uinput"
	}
	keyboard, err := retry.DoWithData(func() (uinput.Keyboard, error) {
		return uinput.CreateKeyboard(path, []byte("goKeyTouch-keyboard"))
	}, retry.Attempts(3), retry.Delay(200*time.Millisecond), retry.LastErrorOnly(true))
	if err != nil {
		s.closeDevices()
		return fmt.Errorf("create virtual keyboard: %w", err)
	}
	s.keyboard = keyboard
	s.closer = keyboard.Close

	for _, d := range s.devices {
		if !d.Keyboard {
			continue
		}
		if err := d.dev.Grab(); err != nil {
			log.Warn().Err(err).Str("device", d.Name).Msg("failed to grab device")
			continue
		}
		d.grabbed = true
	}
	return nil
}

// Run reads and dispatches events until ctx is done. Devices are closed on
// return.
func (s *Source) Run(ctx context.Context) error {
	defer s.once.Do(func() { close(s.stopped) })

	var wg conc.WaitGroup
	for _, d := range s.devices {
		d := d
		log.Info().Str("device", d.Name).Str("path", d.Path).
			Bool("keyboard", d.Keyboard).Bool("mouse", d.Mouse).Bool("grabbed", d.grabbed).
			Msg("monitoring device")
		wg.Go(func() { s.read(ctx, d) })
	}

	for {
		select {
		case <-ctx.Done():
			// Closing the files unblocks the readers.
			s.closeDevices()
			wg.Wait()
			return nil
		case raw := <-s.events:
			s.deliver(raw)
		case fn := <-s.tasks:
			fn()
		}
	}
}

// Do runs fn on the dispatch goroutine, serialized with key handling. It
// returns false if the source has stopped.
func (s *Source) Do(fn func()) bool {
	select {
	case <-s.stopped:
		return false
	default:
	}
	select {
	case s.tasks <- fn:
		return true
	case <-s.stopped:
		return false
	}
}

// Close releases the devices and the pass-through keyboard.
func (s *Source) Close() error {
	s.closeDevices()
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

func (s *Source) read(ctx context.Context, d *Device) {
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				log.Error().Err(err).Str("device", d.Name).Msg("error reading device, giving up on it")
			}
			return
		}
		select {
		case s.events <- rawEvent{dev: d, ev: *ev}:
		case <-ctx.Done():
			return
		}
	}
}

func (s *Source) deliver(raw rawEvent) {
	ev := raw.ev
	switch ev.Type {
	case evdev.EV_REL:
		if s.pointer != nil {
			s.pointer.Move(ev.Code, ev.Value)
		}
		return
	case evdev.EV_KEY:
	default:
		return
	}

	key := keymaps.Key(ev.Code)
	if !key.Valid() {
		// Mouse buttons and other high codes are not remappable.
		return
	}

	e := Event{Key: key, Down: ev.Value != 0, Repeat: ev.Value == 2}
	s.modifiers.Observe(e)
	verdict := s.handle(e)

	if raw.dev != nil && raw.dev.grabbed && s.keyboard != nil {
		s.forward(e, verdict)
	}
}

func (s *Source) handle(e Event) (v Verdict) {
	if s.handler == nil {
		return PassThru
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int("key", int(e.Key)).Bool("down", e.Down).
				Msg("key handler panicked")
			v = PassThru
		}
	}()
	return s.handler.HandleKey(e)
}

func (s *Source) forward(e Event, v Verdict) {
	var err error
	switch {
	case e.Down && v == Mute:
		s.muted[e.Key] = true
	case e.Down && s.muted[e.Key]:
	case e.Down && e.Repeat:
		// the virtual keyboard repeats on its own
	case e.Down:
		err = s.keyboard.KeyDown(int(e.Key))
	case s.muted[e.Key]:
		delete(s.muted, e.Key)
	default:
		err = s.keyboard.KeyUp(int(e.Key))
	}
	if err != nil {
		log.Warn().Err(err).Int("key", int(e.Key)).Msg("failed to pass key through")
	}
}

func (s *Source) closeDevices() {
	for _, d := range s.devices {
		if d.dev == nil || d.dev.File == nil {
			continue
		}
		if d.grabbed {
			if err := d.dev.Release(); err != nil {
				log.Debug().Err(err).Str("device", d.Name).Msg("failed to release device")
			}
			d.grabbed = false
		}
		d.Close()
	}
}
