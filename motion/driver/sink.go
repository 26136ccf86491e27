package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// LineSink writes one "P<position> V<velocity>" line per sample.
type LineSink struct {
	w io.Writer
}

// NewLineSink returns a LineSink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

// Publish writes s to the underlying writer.
func (l *LineSink) Publish(s Sample) error {
	_, err := fmt.Fprintf(l.w, "P%.6f V%.6f\n", s.Position, s.Velocity)
	return err
}

// SerialSink is a LineSink on a serial port.
type SerialSink struct {
	*LineSink
	port *serial.Port
}

// OpenSerial opens the named serial device at baud and returns a sink
// writing to it.
func OpenSerial(name string, baud int) (*SerialSink, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("driver: failed to open serial port %s: %w", name, err)
	}

	return &SerialSink{
		LineSink: NewLineSink(port),
		port:     port,
	}, nil
}

// Close closes the serial port.
func (s *SerialSink) Close() error {
	if s.port != nil {
		return s.port.Close()
	}
	return nil
}
