package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

func newObservedDispatcher(size int) (*Dispatcher, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return NewDispatcher(New(zap.New(core)), size), logs
}

func TestDispatcher_LogsAcceptedRequest(t *testing.T) {
	d, logs := newObservedDispatcher(4)

	d.ForSession("sess-1").Record(appointment.Request{
		FullName:  "Asha Rao",
		Phone:     "9876543210",
		Branch:    "Kondapur",
		Treatment: "Braces",
	})
	d.Close()

	entries := logs.FilterMessage("appointment data").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "sess-1", fields["session_id"])
	assert.Equal(t, ActionAppointmentSubmitted, fields["action"])
	assert.Equal(t, "Asha Rao", fields["full_name"])
	assert.Equal(t, "9876543210", fields["phone"])
	assert.Equal(t, "Kondapur", fields["branch"])
	assert.Equal(t, "Braces", fields["treatment"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}

func TestDispatcher_DropsWhenClosed(t *testing.T) {
	d, logs := newObservedDispatcher(1)
	d.Close()

	ok := d.Dispatch(Event{Action: ActionAppointmentSubmitted})

	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("audit dispatcher closed, dropping event").Len())
	assert.NotPanics(t, d.Close)
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	d, logs := newObservedDispatcher(DefaultQueueSize)

	for i := 0; i < 20; i++ {
		d.Dispatch(Event{Action: ActionAppointmentSubmitted})
	}
	d.Close()

	assert.Equal(t, 20, logs.FilterMessage("appointment data").Len())
}
