package result

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutGetList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Put(ctx, "run-1", "result.json", []byte(`{"ok":true}`)))
	require.NoError(t, s.Put(ctx, "run-1", "batches/1.json", []byte(`{}`)))
	require.NoError(t, s.Put(ctx, "run-2", "result.json", []byte(`{}`)))

	got, err := s.Get(ctx, "run-1", "result.json")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"ok":true}`), got)

	paths, err := s.List(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, []string{"batches/1.json", "result.json"}, paths)
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "run-x", "missing.json")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Validation(t *testing.T) {
	s := NewMemoryStore()
	require.Error(t, s.Put(context.Background(), "", "p", nil))
	require.Error(t, s.Put(context.Background(), "r", "", nil))
	_, err := s.List(context.Background(), "")
	require.Error(t, err)
}

func TestMemoryStore_CopiesContent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	content := []byte("abc")
	require.NoError(t, s.Put(ctx, "run-1", "a", content))
	content[0] = 'z'

	got, err := s.Get(ctx, "run-1", "a")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
}
