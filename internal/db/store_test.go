package db

import (
	"context"
	"errors"
	"testing"

	"github.com/shaibs3/signupsql/internal/db/dbtest"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	conn, rec := dbtest.Open()
	defer conn.Close()

	require.NoError(t, EnsureSchema(context.Background(), conn))
	require.Equal(t, []string{Schema}, rec.Execs())
}

func TestExecStatement(t *testing.T) {
	conn, rec := dbtest.Open()
	defer conn.Close()
	rec.RowsAffected = 2

	stmt := "INSERT INTO public.submissions (id) VALUES\n    (1),\n    (2);"
	n, err := ExecStatement(context.Background(), conn, stmt)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, []string{stmt}, rec.Execs())
}

func TestExecStatement_Error(t *testing.T) {
	conn, rec := dbtest.Open()
	defer conn.Close()
	rec.ExecErr = errors.New("duplicate key")

	_, err := ExecStatement(context.Background(), conn, "INSERT ...")
	require.ErrorContains(t, err, "duplicate key")
	require.Empty(t, rec.Execs())
}
