// Package mmap provides read-only memory mapping for dataset files.
//
// Propensity matrices ship as raw C-contiguous float64 binaries; mapping
// them avoids copying multi-hundred-megabyte files through the heap before
// validation even starts. On platforms without mmap support the file is
// read into memory instead.
package mmap

import (
	"errors"
	"os"
)

// ErrEmptyFile is returned when the file has no content to map.
var ErrEmptyFile = errors.New("mmap: file is empty")

// Mapping is a read-only view of a file's contents.
type Mapping struct {
	data  []byte
	unmap func([]byte) error
	file  *os.File
}

// Open maps the file at path for reading.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if fi.Size() == 0 {
		_ = f.Close()
		return nil, ErrEmptyFile
	}

	data, unmap, err := osMap(f, int(fi.Size()))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Mapping{data: data, unmap: unmap, file: f}, nil
}

// Bytes returns the mapped contents. The slice is valid until Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Close releases the mapping and the underlying file.
func (m *Mapping) Close() error {
	var err error
	if m.unmap != nil {
		err = m.unmap(m.data)
	}
	m.data = nil
	if m.file != nil {
		if cerr := m.file.Close(); err == nil {
			err = cerr
		}
		m.file = nil
	}
	return err
}
