package identicon

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// RenderDB caches encoded identicons in a SQLite database keyed by digest
// and output format, so repeated inputs don't get re-rendered. The cache
// sits entirely outside the pipeline; a missing or broken cache never
// changes what gets rendered.
type RenderDB struct {
	db *sql.DB
}

// NewRenderDB opens or creates the render cache at the given path.
func NewRenderDB(file string) (*RenderDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS render (id INTEGER PRIMARY KEY NOT NULL, digest TEXT NOT NULL, format INTEGER NOT NULL, image BLOB NOT NULL, UNIQUE(digest, format))"); err != nil {
		return nil, err
	}

	return &RenderDB{
		db: db,
	}, nil
}

func (db *RenderDB) Close() error {
	return db.db.Close()
}

// FindRender returns the cached image bytes for the digest and format, or
// nil if there is no entry.
func (db *RenderDB) FindRender(digest string, f Format) ([]byte, error) {
	var image []byte
	switch err := db.db.QueryRow("SELECT image FROM render WHERE digest = ? AND format = ?", digest, int(f)).Scan(&image); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return image, nil
	default:
		return nil, err
	}
}

// AddRender stores the encoded image bytes for the digest and format,
// replacing any existing entry.
func (db *RenderDB) AddRender(digest string, f Format, image []byte) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO render (digest, format, image) VALUES (?, ?, ?)", digest, int(f), image); err != nil {
		return err
	}
	return nil
}
