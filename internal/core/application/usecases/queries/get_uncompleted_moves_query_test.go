package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moving/internal/core/application/usecases/queries"
)

func TestNewGetUncompletedMovesQuery(t *testing.T) {
	query := queries.NewGetUncompletedMovesQuery()

	require.NoError(t, query.Validate())
}

func TestGetUncompletedMovesQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetUncompletedMovesQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedMovesQueryIsNotConstructed)
}
