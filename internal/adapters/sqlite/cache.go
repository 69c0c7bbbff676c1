package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"wordnet/internal/domain"
	"wordnet/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// ErrEmpty is returned when reading from a cache that was never filled
var ErrEmpty = errors.New("taxonomy cache is empty")

// Cache implements ports.TaxonomyCache using SQLite
type Cache struct {
	db     *sql.DB
	dir    string
	name   string
	dbPath string
}

// Ensure Cache implements TaxonomyCache
var _ ports.TaxonomyCache = (*Cache)(nil)

// NewCache creates a new SQLite taxonomy cache storing its databases in
// dir, or under the XDG data directory when dir is empty
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Open initializes the cache for the named taxonomy. The name is usually
// the pair of source paths; each distinct name gets its own database.
func (c *Cache) Open(name string) error {
	c.name = name
	c.dbPath = databasePath(c.dir, name)

	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+c.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS synsets (
			id INTEGER PRIMARY KEY,
			gloss TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS nouns (
			noun TEXT NOT NULL,
			synset_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (synset_id, position)
		);
		CREATE TABLE IF NOT EXISTS hypernyms (
			synset_id INTEGER NOT NULL,
			hypernym_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (synset_id, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nouns_noun ON nouns(noun);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database file backing the cache
func (c *Cache) Path() string {
	return c.dbPath
}

// NeedsRebuild returns true unless the cache was filled from the given fingerprint
func (c *Cache) NeedsRebuild(fingerprint string) bool {
	version, _ := c.meta("schema_version")
	stored, _ := c.meta("fingerprint")
	return version != schemaVersion || stored == "" || stored != fingerprint
}

// Fingerprint returns the fingerprint recorded by the last Store
func (c *Cache) Fingerprint() (string, error) {
	fp, err := c.meta("fingerprint")
	if err != nil {
		return "", err
	}
	if fp == "" {
		return "", ErrEmpty
	}
	return fp, nil
}

// Synsets reads back every cached synset, ordered by id
func (c *Cache) Synsets(ctx context.Context) ([]domain.Synset, error) {
	var synsets []domain.Synset
	index := make(map[int]int)

	rows, err := c.db.QueryContext(ctx, `SELECT id, gloss FROM synsets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var s domain.Synset
		if err := rows.Scan(&s.ID, &s.Gloss); err != nil {
			rows.Close()
			return nil, err
		}
		index[s.ID] = len(synsets)
		synsets = append(synsets, s)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if len(synsets) == 0 {
		return nil, ErrEmpty
	}

	rows, err = c.db.QueryContext(ctx, `SELECT synset_id, noun FROM nouns ORDER BY synset_id, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var noun string
		if err := rows.Scan(&id, &noun); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("noun %q refers to missing synset %d", noun, id)
		}
		synsets[i].Nouns = append(synsets[i].Nouns, noun)
	}

	return synsets, rows.Err()
}

// Hypernyms reads back the cached hypernym lists, one per synset that has any
func (c *Cache) Hypernyms(ctx context.Context) ([]domain.Hypernym, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT synset_id, hypernym_id FROM hypernyms
		ORDER BY synset_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hypernyms []domain.Hypernym
	for rows.Next() {
		var id, hypernym int
		if err := rows.Scan(&id, &hypernym); err != nil {
			return nil, err
		}
		if n := len(hypernyms); n == 0 || hypernyms[n-1].Synset != id {
			hypernyms = append(hypernyms, domain.Hypernym{Synset: id})
		}
		last := &hypernyms[len(hypernyms)-1]
		last.Hypernyms = append(last.Hypernyms, hypernym)
	}

	return hypernyms, rows.Err()
}

// SearchNouns returns nouns containing query (case-insensitive for ASCII),
// shortest first
func (c *Cache) SearchNouns(ctx context.Context, query string, limit int) ([]ports.NounMatch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT noun, GROUP_CONCAT(synset_id)
		FROM nouns
		WHERE noun LIKE ? ESCAPE '\'
		GROUP BY noun
		ORDER BY LENGTH(noun), noun
		LIMIT ?
	`, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []ports.NounMatch
	for rows.Next() {
		var m ports.NounMatch
		var ids string
		if err := rows.Scan(&m.Noun, &ids); err != nil {
			return nil, err
		}
		for _, s := range strings.Split(ids, ",") {
			id, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("corrupt synset list %q for %q", ids, m.Noun)
			}
			m.Synsets = append(m.Synsets, id)
		}
		slices.Sort(m.Synsets)
		m.Synsets = slices.Compact(m.Synsets)
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// databasePath returns the path for the SQLite database
func databasePath(dir, name string) string {
	if dir != "" {
		return filepath.Join(dir, hashName(name)+".db")
	}

	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "wordnet", hashName(name)+".db")
}

// hashName returns a short hash of the taxonomy name
func hashName(name string) string {
	h := sha256.Sum256([]byte(name))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

func (c *Cache) meta(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
