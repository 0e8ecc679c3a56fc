package runtime

import (
	"io"
	"os"
)

// File wraps an os.File with the close-once-then-raise discipline
// spec.md §5 requires for open()/close(): after Close, any further
// Read/Write raises ValueError instead of surfacing a Go "file
// already closed" error. The collector may, but need not, close an
// unclosed File on reclaim — this wrapper carries no finalizer so
// that reclaim behavior stays entirely up to the embedding program.
type File struct {
	f      *os.File
	closed bool
}

// Open opens path under the given mode ("r", "w", "a", "rb", "wb",
// "ab"), mirroring Python's open() mode strings closely enough for
// this subset's file operations.
func Open(path, mode string) (*File, error) {
	flag, perm := fileFlags(mode)
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func fileFlags(mode string) (int, os.FileMode) {
	switch mode {
	case "r", "rb":
		return os.O_RDONLY, 0
	case "w", "wb":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, 0644
	case "a", "ab":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, 0644
	default:
		return os.O_RDONLY, 0
	}
}

func (fl *File) guard() {
	if fl.closed {
		Raisef(ExcValueError, "I/O operation on closed file")
	}
}

// Read reads up to n bytes, or the whole file if n <= 0.
func (fl *File) Read(m *Manager, n int64) (*Buffer, error) {
	fl.guard()
	var data []byte
	var err error
	if n <= 0 {
		data, err = readAll(fl.f)
	} else {
		data = make([]byte, n)
		var got int
		got, err = fl.f.Read(data)
		data = data[:got]
	}
	if err != nil {
		return nil, err
	}
	return NewBuffer(m, data), nil
}

func readAll(f *os.File) ([]byte, error) {
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}

// Write writes b's bytes, returning the count written.
func (fl *File) Write(b *Buffer) (int64, error) {
	fl.guard()
	n, err := fl.f.Write(b.Data)
	return int64(n), err
}

// Close releases the underlying descriptor; subsequent Read/Write
// calls raise ValueError. Close is idempotent.
func (fl *File) Close() error {
	if fl.closed {
		return nil
	}
	fl.closed = true
	return fl.f.Close()
}

// Closed reports whether Close has already run.
func (fl *File) Closed() bool { return fl.closed }
