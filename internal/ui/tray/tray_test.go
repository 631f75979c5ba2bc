package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meetingkeeper/internal/core/model"
	"meetingkeeper/internal/core/timekeeper"
)

func TestStatusFor(t *testing.T) {
	keeper := timekeeper.New(model.MeetingConfig{Goal: "g", Agenda: "a", DurationMinutes: 10}, timekeeper.Config{})
	for i := 0; i < 90; i++ {
		keeper.Tick()
	}
	assert.Equal(t, "Status: Discussion, 08:30 left", StatusFor(keeper.Snapshot()))

	for keeper.Tick() {
	}
	assert.Equal(t, "Status: time's up", StatusFor(keeper.Snapshot()))
}

func TestManager_WithoutTray(t *testing.T) {
	ended := false
	manager := New(nil, Callbacks{OnEndMeeting: func() { ended = true }})
	assert.Equal(t, StatusIdle(), manager.Status())
	assert.True(t, manager.endItem.Disabled)

	manager.SetInMeeting(true)
	assert.False(t, manager.endItem.Disabled)

	keeper := timekeeper.New(model.MeetingConfig{Goal: "g", Agenda: "a", DurationMinutes: 1}, timekeeper.Config{})
	manager.SetSnapshot(keeper.Snapshot())
	assert.Equal(t, "Status: Introduction, 01:00 left", manager.Status())

	manager.endItem.Action()
	assert.True(t, ended)

	manager.SetInMeeting(false)
	assert.True(t, manager.endItem.Disabled)
	assert.Equal(t, StatusIdle(), manager.Status())
}
