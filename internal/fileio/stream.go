package fileio

import "io"

// The stream adapters are non-owning views binding one File to the
// generic io interfaces. Constructing an adapter performs no I/O; the
// adapter's lifetime is bounded by the File it references and closing is
// still the File holder's job. Adapters add no buffering and forward the
// File's own error types unchanged, with one exception: Reader reports
// io.EOF so that generic algorithms such as io.Copy terminate.

// Reader adapts a File to io.Reader.
type Reader struct {
	f *File
}

// Reader returns a non-owning io.Reader view of the file.
func (f *File) Reader() Reader {
	return Reader{f: f}
}

// Read forwards to File.Read and maps a zero-byte read into a non-empty
// buffer to io.EOF.
func (r Reader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Writer adapts a File to io.Writer.
type Writer struct {
	f *File
}

// Writer returns a non-owning io.Writer view of the file.
func (f *File) Writer() Writer {
	return Writer{f: f}
}

// Write forwards to File.Write, which either transmits all of p or
// fails, so a successful call always reports len(p).
func (w Writer) Write(p []byte) (int, error) {
	if err := w.f.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Seeker adapts a File to io.Seeker.
type Seeker struct {
	f *File
}

// Seeker returns a non-owning io.Seeker view of the file.
func (f *File) Seeker() Seeker {
	return Seeker{f: f}
}

// Seek repositions the cursor per the io.Seeker contract and returns the
// new absolute position.
func (s Seeker) Seek(offset int64, whence int) (int64, error) {
	var err error
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, ErrInvalidOffset
		}
		err = s.f.SeekTo(uint64(offset))
	case io.SeekCurrent:
		err = s.f.SeekBy(offset)
	case io.SeekEnd:
		err = s.f.SeekFromEnd(offset)
	default:
		return 0, ErrInvalidWhence
	}
	if err != nil {
		return 0, err
	}
	pos, err := s.f.Pos()
	if err != nil {
		return 0, err
	}
	// #nosec G115 -- file positions fit int64 on both platform families
	return int64(pos), nil
}
