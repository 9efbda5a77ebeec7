package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentChangedEventType(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionCreated, "CONTENT_CREATED"},
		{ActionUpdated, "CONTENT_UPDATED"},
		{ActionDeleted, "CONTENT_DELETED"},
		{ActionExpired, "CONTENT_EXPIRED"},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			e := NewContentChanged("news", "42", "plant-opening", tt.action)
			assert.Equal(t, tt.want, e.EventType())
			assert.Equal(t, "plant-opening", e.Payload()["slug"])
			assert.Equal(t, string(tt.action), e.Payload()["action"])
		})
	}
}
