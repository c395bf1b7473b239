package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/hvila/hvila/internal/config"
)

// Player plays the notification bell.
type Player interface {
	Play(volume float64) error
}

// Desktop shows OS notifications and rings the bell according to the
// user's settings.
type Desktop struct {
	player   Player
	alert    func(title, message, icon string) error
	icon     string
	settings config.Settings
}

// NewDesktop returns a desktop sink. A nil player disables sound.
func NewDesktop(settings config.Settings, icon string, player Player) *Desktop {
	return &Desktop{
		player:   player,
		alert:    beeep.Notify,
		icon:     icon,
		settings: settings,
	}
}

// WithSettings returns a copy of d that follows the given settings.
func (d *Desktop) WithSettings(s config.Settings) *Desktop {
	cp := *d
	cp.settings = s

	return &cp
}

func (d *Desktop) Notify(n Notification) error {
	if d.settings.SoundEnabled && d.player != nil {
		if err := d.player.Play(d.settings.SoundVolume); err != nil {
			return errSound.Wrap(err)
		}
	}

	if !d.settings.NotificationsEnabled {
		return nil
	}

	if err := d.alert(n.Title, n.Text, d.icon); err != nil {
		return errDesktop.Wrap(err)
	}

	return nil
}
