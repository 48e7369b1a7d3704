package touch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/bendahl/uinput"
	"github.com/rs/zerolog/log"
)

// Positioner reports where the pointer currently is.
type Positioner interface {
	Position() (x, y int)
}

// UinputOptions configures the virtual devices.
type UinputOptions struct {
	Path   string
	Name   string
	Width  int
	Height int
	// ForceFallback skips the multi-touch device and clicks with a virtual
	// absolute pointer instead.
	ForceFallback bool
	// Pointer is used to put the cursor back after a fallback click.
	Pointer Positioner
}

// contactDriver is one slot of the virtual multi-touch screen.
type contactDriver interface {
	TouchDownAt(x, y int32) error
	TouchUp() error
}

// UinputInjector injects contacts through a virtual multi-touch screen, or
// through a virtual absolute pointer when no multi-touch device can be
// created.
type UinputInjector struct {
	mu       sync.Mutex
	touch    uinput.MultiTouch
	contacts []contactDriver
	pad      uinput.TouchPad
	pointer  Positioner
	closed   bool
}

// NewUinputInjector creates the virtual devices. Device creation is retried
// since /dev/uinput may appear late during boot.
func NewUinputInjector(opts UinputOptions) (*UinputInjector, error) {
	if opts.Path == "" {
		opts.Path = "/dev/uinput"
	}
	if opts.Name == "" {
		opts.Name = "goKeyTouch"
	}
	maxX, maxY := int32(opts.Width), int32(opts.Height)

	inj := &UinputInjector{pointer: opts.Pointer}

	if !opts.ForceFallback {
		touch, err := retry.DoWithData(func() (uinput.MultiTouch, error) {
			return uinput.CreateMultiTouch(opts.Path, []byte(opts.Name+"-touch"), 0, maxX, 0, maxY, MaxContacts)
		}, retry.Attempts(3), retry.Delay(200*time.Millisecond), retry.LastErrorOnly(true))
		if err == nil {
			inj.touch = touch
			for _, c := range touch.GetContacts() {
				inj.contacts = append(inj.contacts, c)
			}
			log.Info().Int("contacts", len(inj.contacts)).Msg("touch injection initialized")
			return inj, nil
		}
		log.Warn().Err(err).Msg("touch injection not supported, using pointer fallback")
	}

	pad, err := retry.DoWithData(func() (uinput.TouchPad, error) {
		return uinput.CreateTouchPad(opts.Path, []byte(opts.Name+"-pointer"), 0, maxX, 0, maxY)
	}, retry.Attempts(3), retry.Delay(200*time.Millisecond), retry.LastErrorOnly(true))
	if err != nil {
		return nil, fmt.Errorf("create virtual pointer: %w", err)
	}
	inj.pad = pad
	return inj, nil
}

// SupportsMultiTouch implements Injector.
func (u *UinputInjector) SupportsMultiTouch() bool {
	return len(u.contacts) > 0
}

// OpenContact implements Injector.
func (u *UinputInjector) OpenContact(id, x, y int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.contact(id)
	if err != nil {
		return err
	}
	return c.TouchDownAt(int32(x), int32(y))
}

// CloseContact implements Injector.
func (u *UinputInjector) CloseContact(id, _, _ int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	c, err := u.contact(id)
	if err != nil {
		return err
	}
	return c.TouchUp()
}

// Click implements Injector. It moves the pointer, clicks and moves the
// pointer back without sleeping in between.
func (u *UinputInjector) Click(x, y int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return errors.New("injector closed")
	}
	if u.pad == nil {
		return errors.New("no pointer device")
	}

	if err := u.pad.MoveTo(int32(x), int32(y)); err != nil {
		return fmt.Errorf("move pointer: %w", err)
	}
	if err := u.pad.LeftClick(); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	if u.pointer != nil {
		ox, oy := u.pointer.Position()
		if err := u.pad.MoveTo(int32(ox), int32(oy)); err != nil {
			return fmt.Errorf("restore pointer: %w", err)
		}
	}
	return nil
}

// Close releases the virtual devices.
func (u *UinputInjector) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil
	}
	u.closed = true

	var errs []error
	if u.touch != nil {
		if err := u.touch.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close touch device: %w", err))
		}
	}
	if u.pad != nil {
		if err := u.pad.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pointer device: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (u *UinputInjector) contact(id int) (contactDriver, error) {
	if u.closed {
		return nil, errors.New("injector closed")
	}
	if len(u.contacts) == 0 {
		return nil, errors.New("multi-touch not available")
	}
	if id < 0 || id >= len(u.contacts) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	return u.contacts[id], nil
}
