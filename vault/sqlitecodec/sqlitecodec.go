//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package sqlitecodec is a vault.Serializer backed by a SQLite table
// instead of a flat byte stream, for callers that already run the
// account map alongside other relational state.
package sqlitecodec

import (
	"database/sql"
	"io"

	_ "github.com/mattn/go-sqlite3"

	"github.com/polyhasher/polyhasher/vault"
)

const schema = `
CREATE TABLE IF NOT EXISTS polyhasher_accounts (
	username    BLOB NOT NULL,
	sharenumber INTEGER NOT NULL,
	salt        BLOB NOT NULL,
	passhash    BLOB NOT NULL
)`

// Codec is a vault.Serializer that persists the account map as rows
// in a SQLite table rather than an opaque byte stream. Its Encode and
// Decode methods take an io.Writer/io.Reader to satisfy
// vault.Serializer, but ignore them: the real sink is the *sql.DB
// bound at construction. Open documents the Open-then-Codec
// two-step this implies.
type Codec struct {
	db *sql.DB
}

// Open wraps an already-open SQLite connection as a vault.Serializer,
// creating the backing table if it does not yet exist.
func Open(db *sql.DB) (*Codec, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Codec{db: db}, nil
}

func (c *Codec) Encode(_ io.Writer, accounts map[string][]vault.Entry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM polyhasher_accounts`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO polyhasher_accounts (username, sharenumber, salt, passhash) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for user, entries := range accounts {
		for _, e := range entries {
			if _, err := stmt.Exec([]byte(user), e.ShareNumber, e.Salt, e.PassHash); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (c *Codec) Decode(_ io.Reader) (map[string][]vault.Entry, error) {
	rows, err := c.db.Query(`SELECT username, sharenumber, salt, passhash FROM polyhasher_accounts ORDER BY username, sharenumber`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	accounts := make(map[string][]vault.Entry)
	for rows.Next() {
		var username []byte
		var shareNumber uint8
		var salt, passhash []byte
		if err := rows.Scan(&username, &shareNumber, &salt, &passhash); err != nil {
			return nil, err
		}
		key := string(username)
		accounts[key] = append(accounts[key], vault.Entry{
			ShareNumber: shareNumber,
			Salt:        salt,
			PassHash:    passhash,
		})
	}
	return accounts, rows.Err()
}
