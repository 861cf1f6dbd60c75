package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildUpsertCredentialsQuery(t *testing.T) {
	query, args, err := buildUpsertCredentialsQuery(credentialsRow{Token: "t", TokenExpiry: "e", Profile: "p", SavedAt: "s"})
	require.NoError(t, err)

	require.Equal(t, []any{credentialsRowID, "t", "e", "p", "s"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into credentials")
	require.Contains(t, q, "on conflict(id) do update")
	// placeholder format should be ? (sqlite)
	require.NotContains(t, query, "$1")
	require.Equal(t, 5, strings.Count(query, "?"))
}

func Test_buildSelectRegistrationQuery(t *testing.T) {
	query, args, err := buildSelectRegistrationQuery("a@b.com")
	require.NoError(t, err)

	require.Equal(t, []any{"a@b.com"}, args)
	require.Contains(t, query, "FROM registrations WHERE email = ?")
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteCredentialsQuery()
	require.NoError(t, err)
	require.Empty(t, args)
	require.Equal(t, "DELETE FROM credentials", query)

	query, _, err = buildDeleteRegistrationsQuery()
	require.NoError(t, err)
	require.Equal(t, "DELETE FROM registrations", query)
}
