package wplace

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a SQLite archive of palette usage tallies keyed by image
// content, so a directory of artwork only pays for tallying once per
// distinct image.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens the catalog database at file, creating it and its
// schema as needed.
func OpenCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS report (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, path TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, created TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS usage (report_id INTEGER NOT NULL, label TEXT NOT NULL, count INTEGER NOT NULL, FOREIGN KEY(report_id) REFERENCES report(id))"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close releases the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// HasImage reports whether a tally exists for the given content hash.
func (c *Catalog) HasImage(sha string) (bool, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM report WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return true, nil
	default:
		return false, err
	}
}

// SaveReport stores a usage tally under the image's content hash. Saving
// the same content again leaves the existing tally in place.
func (c *Catalog) SaveReport(sha, path string, width, height int, usage []Usage) error {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM report WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
	case nil:
		return nil
	default:
		return err
	}

	// Another worker may save identical content between the lookup and
	// here, so losing the insert is not an error.
	result, err := c.db.Exec("INSERT OR IGNORE INTO report (sha1, path, width, height, created) VALUES (?, ?, ?, ?, ?)", sha, path, width, height, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return nil
	}

	id, err = result.LastInsertId()
	if err != nil {
		return err
	}

	for _, u := range usage {
		if _, err := c.db.Exec("INSERT INTO usage (report_id, label, count) VALUES (?, ?, ?)", id, u.Label, u.Count); err != nil {
			return err
		}
	}

	return nil
}

// FindUsageBySHA1 returns the stored tally for a content hash, most-used
// first, or nil when none exists.
func (c *Catalog) FindUsageBySHA1(sha string) ([]Usage, error) {
	rows, err := c.db.Query("SELECT usage.label, usage.count FROM usage JOIN report ON usage.report_id = report.id WHERE report.sha1 = ? ORDER BY usage.count DESC, usage.label", sha)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []Usage
	for rows.Next() {
		var u Usage
		if err := rows.Scan(&u.Label, &u.Count); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}

	return usage, rows.Err()
}
