package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_ClosesInReverseOrder(t *testing.T) {
	c := New(0)

	var order []string
	c.AddSimple("first", func() error {
		order = append(order, "first")
		return nil
	})
	c.AddSimple("second", func() error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := New(0)
	c.AddSimple("redis", func() error { return errors.New("boom") })
	c.AddSimple("http", func() error { return nil })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: boom")
}

func TestCloser_CloseIsIdempotent(t *testing.T) {
	c := New(0)

	calls := 0
	c.AddSimple("bolt", func() error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_ForcesRemainingOnTimeout(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.AddSimple("stuck", func() error {
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted after 0/1 resources")
}
