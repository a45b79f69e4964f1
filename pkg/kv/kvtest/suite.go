// Package kvtest holds the behaviour every kv.TxStore backend must satisfy.
package kvtest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/interchain-gateway/pkg/kv"
)

type entry struct {
	key   string
	value string
}

func collect(t *testing.T, ctx context.Context, s kv.Store, namespace string) []entry {
	t.Helper()

	var out []entry
	err := s.Range(ctx, namespace, func(key, value []byte) error {
		out = append(out, entry{key: string(key), value: string(value)})
		return nil
	})
	require.NoError(t, err)
	return out
}

// RunStoreSuite runs the shared backend checks. newStore must return an empty store.
func RunStoreSuite(t *testing.T, newStore func(t *testing.T) kv.TxStore) {
	t.Run("GetMissing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), "ns", []byte("missing"))
		require.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("SetGetRemove", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "ns", []byte("a"), []byte("1")))
		got, err := s.Get(ctx, "ns", []byte("a"))
		require.NoError(t, err)
		require.Equal(t, []byte("1"), got)

		require.NoError(t, s.Set(ctx, "ns", []byte("a"), []byte("2")))
		got, err = s.Get(ctx, "ns", []byte("a"))
		require.NoError(t, err)
		require.Equal(t, []byte("2"), got)

		require.NoError(t, s.Remove(ctx, "ns", []byte("a")))
		_, err = s.Get(ctx, "ns", []byte("a"))
		require.ErrorIs(t, err, kv.ErrNotFound)

		require.NoError(t, s.Remove(ctx, "ns", []byte("a")))
	})

	t.Run("NamespacesAreIsolated", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.Set(ctx, "left", []byte("k"), []byte("l")))
		require.NoError(t, s.Set(ctx, "right", []byte("k"), []byte("r")))

		require.Equal(t, []entry{{"k", "l"}}, collect(t, ctx, s, "left"))
		require.Equal(t, []entry{{"k", "r"}}, collect(t, ctx, s, "right"))
		require.Empty(t, collect(t, ctx, s, "other"))
	})

	t.Run("RangeAscending", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for _, k := range []string{"chain3", "chain1", "b", "chain2", "a"} {
			require.NoError(t, s.Set(ctx, "ns", []byte(k), []byte("v-"+k)))
		}

		require.Equal(t, []entry{
			{"a", "v-a"},
			{"b", "v-b"},
			{"chain1", "v-chain1"},
			{"chain2", "v-chain2"},
			{"chain3", "v-chain3"},
		}, collect(t, ctx, s, "ns"))
	})

	t.Run("RangeStopsOnError", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		stop := errors.New("stop")

		require.NoError(t, s.Set(ctx, "ns", []byte("a"), []byte("1")))
		require.NoError(t, s.Set(ctx, "ns", []byte("b"), []byte("2")))

		visited := 0
		err := s.Range(ctx, "ns", func(_, _ []byte) error {
			visited++
			return stop
		})
		require.ErrorIs(t, err, stop)
		require.Equal(t, 1, visited)
	})

	t.Run("TxCommit", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "ns", []byte("old"), []byte("x")))

		err := s.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
			if err := tx.Set(ctx, "ns", []byte("new"), []byte("y")); err != nil {
				return err
			}
			if err := tx.Remove(ctx, "ns", []byte("old")); err != nil {
				return err
			}

			// the transaction sees its own writes
			got, err := tx.Get(ctx, "ns", []byte("new"))
			if err != nil {
				return err
			}
			require.Equal(t, []byte("y"), got)
			_, err = tx.Get(ctx, "ns", []byte("old"))
			require.ErrorIs(t, err, kv.ErrNotFound)
			require.Equal(t, []entry{{"new", "y"}}, collect(t, ctx, tx, "ns"))
			return nil
		})
		require.NoError(t, err)

		require.Equal(t, []entry{{"new", "y"}}, collect(t, ctx, s, "ns"))
	})

	t.Run("TxRollback", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Set(ctx, "ns", []byte("keep"), []byte("x")))
		failed := errors.New("boom")

		err := s.RunInTx(ctx, func(ctx context.Context, tx kv.Store) error {
			if err := tx.Set(ctx, "ns", []byte("dropped"), []byte("y")); err != nil {
				return err
			}
			if err := tx.Remove(ctx, "ns", []byte("keep")); err != nil {
				return err
			}
			return failed
		})
		require.ErrorIs(t, err, failed)

		require.Equal(t, []entry{{"keep", "x"}}, collect(t, ctx, s, "ns"))
	})
}
