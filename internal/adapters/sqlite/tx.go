package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"wordnet/internal/domain"
)

// storeTx wraps a rebuild transaction with its prepared statements
type storeTx struct {
	tx         *sql.Tx
	synset     *sql.Stmt
	noun       *sql.Stmt
	hypernym   *sql.Stmt
	statements []*sql.Stmt
}

func (c *Cache) beginTx(ctx context.Context) (*storeTx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	t := &storeTx{tx: tx}

	prepare := func(query string) *sql.Stmt {
		if err != nil {
			return nil
		}
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx, query)
		if err == nil {
			t.statements = append(t.statements, stmt)
		}
		return stmt
	}

	t.synset = prepare(`INSERT INTO synsets (id, gloss) VALUES (?, ?)`)
	t.noun = prepare(`INSERT INTO nouns (noun, synset_id, position) VALUES (?, ?, ?)`)
	t.hypernym = prepare(`
		INSERT INTO hypernyms (synset_id, hypernym_id, position)
		VALUES (?, ?, COALESCE((SELECT MAX(position) + 1 FROM hypernyms WHERE synset_id = ?), 0))
	`)
	if err != nil {
		t.Rollback()
		return nil, err
	}

	return t, nil
}

// clear removes all cached records
func (t *storeTx) clear() error {
	_, err := t.tx.Exec(`
		DELETE FROM nouns;
		DELETE FROM hypernyms;
		DELETE FROM synsets;
		DELETE FROM meta;
	`)
	return err
}

// insertSynset adds a synset and its nouns
func (t *storeTx) insertSynset(s domain.Synset) error {
	if _, err := t.synset.Exec(s.ID, s.Gloss); err != nil {
		return err
	}
	for i, noun := range s.Nouns {
		if _, err := t.noun.Exec(noun, s.ID, i); err != nil {
			return err
		}
	}
	return nil
}

// insertHypernyms appends a hypernym list. Repeated lines for one synset
// accumulate, matching how the graph treats them.
func (t *storeTx) insertHypernyms(h domain.Hypernym) error {
	for _, id := range h.Hypernyms {
		if _, err := t.hypernym.Exec(h.Synset, id, h.Synset); err != nil {
			return err
		}
	}
	return nil
}

// setMeta writes metadata entries
func (t *storeTx) setMeta(entries map[string]string) error {
	for key, value := range entries {
		if _, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return err
		}
	}
	return nil
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	err := t.tx.Commit()
	return errors.Join(err, t.closeStatements())
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		err = nil
	}
	return errors.Join(err, t.closeStatements())
}

func (t *storeTx) closeStatements() error {
	var errs []error
	for _, stmt := range t.statements {
		errs = append(errs, stmt.Close())
	}
	t.statements = nil
	return errors.Join(errs...)
}
