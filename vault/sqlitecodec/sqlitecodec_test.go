//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package sqlitecodec

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/polyhasher/polyhasher/vault"
)

func TestOpen_CreatesSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS polyhasher_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Open(db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEncode_WritesRowsInsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS polyhasher_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	codec, err := Open(db)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM polyhasher_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(`INSERT INTO polyhasher_accounts`).
		ExpectExec().
		WithArgs([]byte("alice"), uint8(1), []byte("salt1234salt5678"), []byte("passhashbytes")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	accounts := map[string][]vault.Entry{
		"alice": {{ShareNumber: 1, Salt: []byte("salt1234salt5678"), PassHash: []byte("passhashbytes")}},
	}
	require.NoError(t, codec.Encode(nil, accounts))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEncode_RollsBackOnExecFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS polyhasher_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	codec, err := Open(db)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM polyhasher_accounts`).WillReturnError(sqlErr)
	mock.ExpectRollback()

	err = codec.Encode(nil, map[string][]vault.Entry{"alice": {{ShareNumber: 1}}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecode_ReadsRowsIntoAccountMap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS polyhasher_accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	codec, err := Open(db)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"username", "sharenumber", "salt", "passhash"}).
		AddRow([]byte("alice"), uint8(1), []byte("salt1234salt5678"), []byte("passhashbytes"))
	mock.ExpectQuery(`SELECT username, sharenumber, salt, passhash FROM polyhasher_accounts`).WillReturnRows(rows)

	got, err := codec.Decode(nil)
	require.NoError(t, err)
	require.Len(t, got["alice"], 1)
	require.Equal(t, uint8(1), got["alice"][0].ShareNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

var sqlErr = errDeleteFailed{}

type errDeleteFailed struct{}

func (errDeleteFailed) Error() string { return "delete failed" }
