package form

// NotificationToggle presents notifications as "keep the current state" or
// "flip it" rather than a raw on/off switch. CurrentlyEnabled is owned by the
// controller and always reflects the last configuration loaded from the server.
type NotificationToggle struct {
	CurrentlyEnabled bool
}

// ToggleOption is one choice offered by the toggle.
type ToggleOption struct {
	Label       string
	KeepCurrent bool
}

func (t NotificationToggle) KeepLabel() string {
	if t.CurrentlyEnabled {
		return "Keep Notifications On"
	}
	return "Keep Notifications Paused"
}

func (t NotificationToggle) FlipLabel() string {
	if t.CurrentlyEnabled {
		return "Pause Notifications"
	}
	return "Resume Notifications"
}

// Options lists the keep option first.
func (t NotificationToggle) Options() []ToggleOption {
	return []ToggleOption{
		{Label: t.KeepLabel(), KeepCurrent: true},
		{Label: t.FlipLabel(), KeepCurrent: false},
	}
}

// Resolve translates a choice into the notifications_enabled value to store.
func (t NotificationToggle) Resolve(keepCurrent bool) bool {
	return keepCurrent == t.CurrentlyEnabled
}

// KeepsCurrent is the inverse of Resolve: which choice yields enabled.
func (t NotificationToggle) KeepsCurrent(enabled bool) bool {
	return enabled == t.CurrentlyEnabled
}
