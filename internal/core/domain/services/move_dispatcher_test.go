package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/move"
	"moving/internal/core/domain/model/mover"
)

func newDispatchMove(t *testing.T, moveType kernel.MoveType) *move.Move {
	t.Helper()

	mv, err := move.NewMove(kernel.NewUUID(), kernel.NewUUID(), moveType)
	require.NoError(t, err)

	return mv
}

func newDispatchMover(t *testing.T, maxTier kernel.MoveType) *mover.Mover {
	t.Helper()

	m, err := mover.NewMover(kernel.NewUUID(), kernel.NewUUID().String(), "test mover", maxTier)
	require.NoError(t, err)

	return m
}

func TestMoveDispatcherDispatch(t *testing.T) {
	dispatcher := NewMoveDispatcher()

	t.Run("should assign the only capable mover", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypeRegular)
		m := newDispatchMover(t, kernel.MoveTypeRegular)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{m})

		require.NoError(t, err)
		assert.Equal(t, m, best)
		assert.Equal(t, move.StatusMoverAssigned, mv.Status())
		require.NotNil(t, mv.MoverProfileID())
		assert.True(t, mv.MoverProfileID().IsEqual(m.ID()))
	})

	t.Run("should prefer the tightest capability fit", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypeLight)
		premium := newDispatchMover(t, kernel.MoveTypePremium)
		light := newDispatchMover(t, kernel.MoveTypeLight)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{premium, light})

		require.NoError(t, err)
		assert.Equal(t, light, best)
	})

	t.Run("should pick the first mover on a capability tie", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypeRegular)
		first := newDispatchMover(t, kernel.MoveTypeRegular)
		second := newDispatchMover(t, kernel.MoveTypeRegular)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{first, second})

		require.NoError(t, err)
		assert.Equal(t, first, best)
	})

	t.Run("should skip movers that cannot serve the tier", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypePremium)
		light := newDispatchMover(t, kernel.MoveTypeLight)
		premium := newDispatchMover(t, kernel.MoveTypePremium)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{light, premium})

		require.NoError(t, err)
		assert.Equal(t, premium, best)
	})

	t.Run("should return error when no mover can serve the tier", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypePremium)
		light := newDispatchMover(t, kernel.MoveTypeLight)
		regular := newDispatchMover(t, kernel.MoveTypeRegular)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{light, regular})

		assert.Nil(t, best)
		assert.ErrorIs(t, err, ErrMoverNotFound)
		assert.Equal(t, move.StatusAccepted, mv.Status())
	})

	t.Run("should return error when no movers are provided", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypeLight)

		best, err := dispatcher.Dispatch(mv, nil)

		assert.Nil(t, best)
		assert.ErrorIs(t, err, ErrMoverNotFound)
	})

	t.Run("should return error for an invalid move", func(t *testing.T) {
		m := newDispatchMover(t, kernel.MoveTypeRegular)

		best, err := dispatcher.Dispatch(&move.Move{}, []*mover.Mover{m})

		assert.Nil(t, best)
		assert.ErrorIs(t, err, move.ErrMoveIsNotConstructed)
	})

	t.Run("should not assign a mover to an already assigned move", func(t *testing.T) {
		mv := newDispatchMove(t, kernel.MoveTypeRegular)
		first := newDispatchMover(t, kernel.MoveTypeRegular)
		second := newDispatchMover(t, kernel.MoveTypeRegular)

		_, err := dispatcher.Dispatch(mv, []*mover.Mover{first})
		require.NoError(t, err)

		best, err := dispatcher.Dispatch(mv, []*mover.Mover{second})

		assert.Nil(t, best)
		assert.ErrorIs(t, err, move.ErrMoverAlreadyAssigned)
	})
}
