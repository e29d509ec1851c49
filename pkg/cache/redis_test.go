package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) *Client {
	t.Helper()

	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SetGet(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "credibility:42", `{"overall_score":77}`, time.Minute))

	got, err := c.Get(ctx, "credibility:42")
	require.NoError(t, err)
	require.Equal(t, `{"overall_score":77}`, got)
}

func TestClient_GetMiss(t *testing.T) {
	c := setupCache(t)

	_, err := c.Get(context.Background(), "credibility:999")
	require.Error(t, err)
}

func TestClient_Del(t *testing.T) {
	c := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "credibility:1", "x", time.Minute))
	require.NoError(t, c.Del(ctx, "credibility:1"))

	_, err := c.Get(ctx, "credibility:1")
	require.Error(t, err)
}

func TestClient_NilIsNoop(t *testing.T) {
	var c *Client
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Del(ctx, "k"))
	require.NoError(t, c.Close())

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
}
