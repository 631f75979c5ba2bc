package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetingConfig_TotalSeconds(t *testing.T) {
	assert.Equal(t, 60, MeetingConfig{DurationMinutes: 1}.TotalSeconds())
	assert.Equal(t, 7500, MeetingConfig{DurationMinutes: 125}.TotalSeconds())
}

func TestMeetingConfig_AgendaItems(t *testing.T) {
	config := MeetingConfig{Agenda: "1. Review\n\n  2. Ideas  \n3. Budget\n"}
	assert.Equal(t, []string{"1. Review", "2. Ideas", "3. Budget"}, config.AgendaItems())
	assert.Empty(t, MeetingConfig{Agenda: " \n "}.AgendaItems())
}
