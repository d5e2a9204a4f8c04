package xmlevent

import (
	"bufio"
	"bytes"
	"io"
)

// tap is the decoder's byte source. Being an io.ByteReader keeps the decoder
// from buffering ahead, so the decoder's InputOffset indexes the bytes the tap
// has recorded. Bytes before the current token are discarded.
type tap struct {
	r       *bufio.Reader
	base    int64
	buf     []byte
	stopped bool
}

func newTap(r io.Reader, base int64) *tap {
	return &tap{r: bufio.NewReader(r), base: base}
}

func (t *tap) ReadByte() (byte, error) {
	b, err := t.r.ReadByte()
	if err == nil && !t.stopped {
		t.buf = append(t.buf, b)
	}
	return b, err
}

// Read serves a charset converter layered on top of the tap.
func (t *tap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 && !t.stopped {
		t.buf = append(t.buf, p[:n]...)
	}
	return n, err
}

// stop ends recording once the decoder reads through a converter instead.
func (t *tap) stop() {
	t.stopped = true
	t.buf = nil
}

// hasPrefix reports whether the bytes recorded at absolute offset off begin
// with prefix.
func (t *tap) hasPrefix(off int64, prefix string) bool {
	i := off - t.base
	if i < 0 || i > int64(len(t.buf)) {
		return false
	}
	return bytes.HasPrefix(t.buf[i:], []byte(prefix))
}

// discard drops recorded bytes before absolute offset off.
func (t *tap) discard(off int64) {
	i := off - t.base
	if i <= 0 {
		return
	}
	if i > int64(len(t.buf)) {
		i = int64(len(t.buf))
	}
	t.buf = t.buf[i:]
	t.base += i
}
