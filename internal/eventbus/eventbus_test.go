package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEvent struct {
	N int
}

type otherEvent struct{}

func TestPublishSubscribe(t *testing.T) {
	Use(New())
	t.Cleanup(func() { Use(nil) })

	var got []int
	Subscribe(func(_ context.Context, e testEvent) { got = append(got, e.N) })
	Subscribe(func(_ context.Context, e testEvent) { got = append(got, e.N*10) })
	Subscribe(func(_ context.Context, _ otherEvent) { got = append(got, -1) })

	Publish(context.Background(), testEvent{N: 2})
	require.Equal(t, []int{2, 20}, got)

	Publish(context.Background(), otherEvent{})
	require.Equal(t, []int{2, 20, -1}, got)
}

func TestSubscribeDuringDispatch(t *testing.T) {
	Use(New())
	t.Cleanup(func() { Use(nil) })

	var calls []string
	Subscribe(func(_ context.Context, _ testEvent) {
		calls = append(calls, "first")
		Subscribe(func(_ context.Context, _ testEvent) { calls = append(calls, "second") })
	})

	// Dispatch runs over a snapshot: the handler registered mid-publish is
	// not invoked for the in-flight event, only for later ones.
	Publish(context.Background(), testEvent{})
	require.Equal(t, []string{"first"}, calls)

	Publish(context.Background(), testEvent{})
	require.Equal(t, []string{"first", "first", "second"}, calls)
}

func TestPublishWithoutBus(t *testing.T) {
	Use(nil)
	// Must not panic, must not dispatch.
	Subscribe(func(_ context.Context, _ testEvent) { t.Fatal("handler called") })
	Publish(context.Background(), testEvent{N: 1})
}
