// Package recording stores the inputs of a controller tick by tick so its movement can be replayed and
// verified later. A recording is a zstd compressed stream of JSON lines: a Header followed by one Frame
// per tick.
package recording

import (
	"bufio"
	"io"
	"os"

	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
	"github.com/oomph-ac/tickmove/movement"
	"github.com/oomph-ac/tickmove/oerror"
)

// CurrentVersion is the version written to new recordings. Readers refuse any other version.
const CurrentVersion = "1"

// maxLineSize bounds a single line of a recording.
const maxLineSize = 1 << 20

// ErrOutOfOrder is returned when a frame's tick is not after the tick of the frame before it.
var ErrOutOfOrder = oerror.New("frame tick is not after the previous frame")

// Header is the first line of a recording and describes how the frames were produced.
type Header struct {
	Version string `json:"version"`
	// Signature is the signature of the pipeline the inputs were recorded with.
	Signature uint64          `json:"signature"`
	Config    movement.Config `json:"config"`
	Start     mgl32.Vec3      `json:"start"`
}

// Frame is the input of a single tick.
type Frame struct {
	Tick  int64          `json:"tick"`
	Input movement.Input `json:"input"`
}

// Writer writes a recording.
type Writer struct {
	enc *zstd.Encoder
	w   *bufio.Writer
	f   io.Closer

	written  bool
	lastTick int64
}

// NewWriter writes the header passed to w and returns a Writer for the frames that follow. An empty
// header version is replaced with CurrentVersion. Close must be called to flush the recording, but it
// does not close w.
func NewWriter(w io.Writer, header Header) (*Writer, error) {
	if header.Version == "" {
		header.Version = CurrentVersion
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, oerror.Wrap(err, "unable to create recording encoder")
	}
	rw := &Writer{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}
	if err := rw.writeLine(header); err != nil {
		_ = enc.Close()
		return nil, oerror.Wrap(err, "unable to write recording header")
	}
	return rw, nil
}

// Create creates the file at path, replacing an existing one, and returns a Writer to it. Closing the
// Writer closes the file.
func Create(path string, header Header) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, oerror.Wrap(err, "unable to open recording file")
	}
	w, err := NewWriter(f, header)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.f = f
	return w, nil
}

// Write appends a frame. Ticks must strictly increase from one frame to the next.
func (w *Writer) Write(frame Frame) error {
	if w.written && frame.Tick <= w.lastTick {
		return oerror.Wrap(ErrOutOfOrder, "tick %d after tick %d", frame.Tick, w.lastTick)
	}
	if err := w.writeLine(frame); err != nil {
		return oerror.Wrap(err, "unable to write frame for tick %d", frame.Tick)
	}
	w.written, w.lastTick = true, frame.Tick
	return nil
}

func (w *Writer) writeLine(v any) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(enc); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes the recording and finishes the compressed stream.
func (w *Writer) Close() error {
	err := w.w.Flush()
	if cerr := w.enc.Close(); err == nil {
		err = cerr
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Reader reads a recording.
type Reader struct {
	dec *zstd.Decoder
	sc  *bufio.Scanner
	f   io.Closer

	header   Header
	read     bool
	lastTick int64
}

// NewReader reads the header of the recording in r.
func NewReader(r io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, oerror.Wrap(err, "unable to create recording decoder")
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	rr := &Reader{dec: dec, sc: sc}
	if !sc.Scan() {
		dec.Close()
		if err := sc.Err(); err != nil {
			return nil, oerror.Wrap(err, "unable to read recording header")
		}
		return nil, oerror.New("recording has no header")
	}
	if err := json.Unmarshal(sc.Bytes(), &rr.header); err != nil {
		dec.Close()
		return nil, oerror.Wrap(err, "unable to decode recording header")
	}
	if rr.header.Version != CurrentVersion {
		dec.Close()
		return nil, oerror.New("unsupported recording version: %q", rr.header.Version)
	}
	return rr, nil
}

// Open opens the recording at path. Closing the Reader closes the file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oerror.Wrap(err, "unable to open recording file")
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.f = f
	return r, nil
}

// Header returns the header of the recording.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, or io.EOF once every frame was read. Empty lines are skipped.
func (r *Reader) Next() (Frame, error) {
	for r.sc.Scan() {
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(line, &frame); err != nil {
			return Frame{}, oerror.Wrap(err, "unable to decode frame")
		}
		if r.read && frame.Tick <= r.lastTick {
			return Frame{}, oerror.Wrap(ErrOutOfOrder, "tick %d after tick %d", frame.Tick, r.lastTick)
		}
		r.read, r.lastTick = true, frame.Tick
		return frame, nil
	}
	if err := r.sc.Err(); err != nil {
		return Frame{}, oerror.Wrap(err, "unable to read frame")
	}
	return Frame{}, io.EOF
}

// Close releases the decoder.
func (r *Reader) Close() error {
	r.dec.Close()
	if r.f != nil {
		return r.f.Close()
	}
	return nil
}
