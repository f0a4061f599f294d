package audit

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingSink) Write(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	sink := &recordingSink{}
	d := NewDispatcher(sink, zerolog.Nop(), func() time.Time { return fixed })

	d.Dispatch(Event{Action: "agenda_created", Entity: "agenda", Key: "2024-05-02|09:00"})
	d.Dispatch(Event{Action: "agenda_deleted", Entity: "agenda", Key: "2024-05-02|09:00"})
	d.Close()

	require.Len(t, sink.events, 2)
	assert.Equal(t, "agenda_created", sink.events[0].Action)
	assert.Equal(t, "agenda_deleted", sink.events[1].Action)
	assert.Equal(t, fixed, sink.events[0].At)
}

func TestDispatcher_SinkErrorIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink, zerolog.New(&buf), nil)

	d.Dispatch(Event{Action: "preco_created"})
	d.Close()

	assert.Contains(t, buf.String(), "audit write failed")
	assert.Contains(t, buf.String(), "db down")
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	t.Parallel()

	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestDispatcher_CloseTwice(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(&recordingSink{}, zerolog.Nop(), nil)
	d.Close()
	d.Close()
}

func TestLogSink_Write(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	require.NoError(t, sink.Write(context.Background(), Event{Action: "paciente_created", Entity: "paciente", Key: "Ana"}))
	assert.Contains(t, buf.String(), `"action":"paciente_created"`)
	assert.Contains(t, buf.String(), `"key":"Ana"`)
}
