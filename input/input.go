// Package input reads button events from a Linux evdev device and exposes
// them as a channel of press/release events.
package input

import (
	"fmt"
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/tvjuke-cli/tvjuke/log"
)

// Event is a single key transition reported by the device.
type Event struct {
	Code    uint16
	Pressed bool
	Time    time.Time
}

// Source yields a stream of key events. The channel closes when the source
// is exhausted; Err reports whether that was a device failure or a Close.
type Source interface {
	Events() <-chan Event
	Err() error
	Close() error
}

// Device is an evdev-backed Source.
type Device struct {
	dev    *evdev.InputDevice
	events chan Event
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Open acquires the evdev device at path and starts reading key events.
// A missing or unreadable device is reported as an error immediately.
func Open(path string) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	name, err := dev.Name()
	if err != nil {
		name = "unknown"
	}
	log.Infof("listening for input on %s (%s)", path, name)

	d := &Device{
		dev:    dev,
		events: make(chan Event),
		done:   make(chan struct{}),
	}
	go d.read()
	return d, nil
}

// read pumps key events until the device errors or is closed.
func (d *Device) read() {
	defer close(d.events)

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			d.mu.Lock()
			select {
			case <-d.done:
				// Closed by the consumer; not a device failure.
			default:
				d.err = fmt.Errorf("read input event: %w", err)
			}
			d.mu.Unlock()
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}
		// Value 2 is autorepeat; only genuine transitions matter here.
		if ev.Value != 0 && ev.Value != 1 {
			continue
		}

		select {
		case d.events <- Event{
			Code:    uint16(ev.Code),
			Pressed: ev.Value == 1,
			Time:    time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*int64(time.Microsecond)),
		}:
		case <-d.done:
			return
		}
	}
}

// Events returns the stream of key events.
func (d *Device) Events() <-chan Event {
	return d.events
}

// Err returns the device failure that ended the stream, if any.
// It is nil after a clean Close.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Close releases the device. The event channel closes shortly after.
func (d *Device) Close() error {
	d.mu.Lock()
	select {
	case <-d.done:
	default:
		close(d.done)
	}
	d.mu.Unlock()
	return d.dev.Close()
}
