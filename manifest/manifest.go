/*
Package manifest implements the small index file written alongside a batch
of generated identicons, mapping each input digest to the filename the
image was written to.

The file is plain text, one entry per line, with the digest and filename
separated by a tab. Entries are sorted by digest so regenerating the same
batch produces an identical file.
*/
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Filename is the expected filename used when writing to disk
const Filename = "identicons.idx"

// DB is the manifest object. It implements the encoding.TextMarshaler and
// encoding.TextUnmarshaler interfaces.
type DB struct {
	entries map[string]string
}

// New returns an empty manifest
func New() *DB {
	return &DB{
		entries: make(map[string]string),
	}
}

// Length returns the number of entries in the manifest
func (db *DB) Length() int {
	return len(db.entries)
}

// Set stores the filename for the given digest. The first entry for a
// digest wins; the same input rendered twice writes the same file anyway.
func (db *DB) Set(digest, filename string) {
	if _, ok := db.entries[digest]; !ok {
		db.entries[digest] = filename
	}
}

// Get returns the filename recorded for the given digest
func (db *DB) Get(digest string) (string, bool) {
	filename, ok := db.entries[digest]
	return filename, ok
}

// MarshalText encodes the manifest into text form and returns the result
func (db *DB) MarshalText() ([]byte, error) {
	keys := make([]string, 0, len(db.entries))
	for k := range db.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := new(bytes.Buffer)
	for _, k := range keys {
		if _, err := fmt.Fprintf(b, "%s\t%s\n", k, db.entries[k]); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

// UnmarshalText decodes the manifest from text form
func (db *DB) UnmarshalText(b []byte) error {
	db.entries = make(map[string]string)

	s := bufio.NewScanner(bytes.NewReader(b))
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}

		digest, filename, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("manifest: malformed entry \"%s\"", line)
		}
		db.entries[digest] = filename
	}

	return s.Err()
}
