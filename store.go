package bankbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// LoadBook loads the book from path and runs the interest accrual once.
//
// A missing file is not an error: an empty book is created on disk and
// returned, so the file exists from the first load on. Malformed content is
// not an error either: the stored state is discarded and an empty book
// returned. That recovery policy matches the legacy files this tool
// inherits; the corrupt file itself is left untouched on disk until the
// next save overwrites it.
func LoadBook(path string, opts ...Option) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, book file %q does not exist, starting with an empty book", path)
		book := NewBook(opts...)
		if err := SaveBook(path, book); err != nil {
			return nil, err
		}
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f, opts...)
	if errors.Is(err, ErrCorruptStorage) {
		log.Printf("warning, book file %q is corrupt, discarding it and starting empty: %v", path, err)
		return NewBook(opts...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}

	// Accrual runs once per load, never on save. Positive accruals appear in
	// the history as synthetic interest transactions.
	book.ApplyInterest()
	return book, nil
}

// SaveBook serializes the whole book to path, overwriting the previous
// contents. The write goes to a temporary file first and is renamed into
// place, so a crash mid-write never corrupts the previous state.
func SaveBook(path string, b *Book) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("could not create book file %q: %w", tmp, err)
	}
	if err := EncodeBook(f, b); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("could not encode book to %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close book file %q: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
