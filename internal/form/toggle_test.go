package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationToggle(t *testing.T) {
	tests := []struct {
		name      string
		current   bool
		keep      bool
		wantLabel string
		want      bool
	}{
		{"keep on", true, true, "Keep Notifications On", true},
		{"pause", true, false, "Pause Notifications", false},
		{"keep paused", false, true, "Keep Notifications Paused", false},
		{"resume", false, false, "Resume Notifications", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggle := NotificationToggle{CurrentlyEnabled: tt.current}
			assert.Equal(t, tt.want, toggle.Resolve(tt.keep))
			assert.Equal(t, tt.keep, toggle.KeepsCurrent(tt.want))

			var label string
			for _, opt := range toggle.Options() {
				if opt.KeepCurrent == tt.keep {
					label = opt.Label
				}
			}
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestNotificationToggle_KeepOptionFirst(t *testing.T) {
	opts := NotificationToggle{CurrentlyEnabled: true}.Options()
	assert.Len(t, opts, 2)
	assert.True(t, opts[0].KeepCurrent)
	assert.False(t, opts[1].KeepCurrent)
}
