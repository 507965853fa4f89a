// ABOUTME: Command messages emitted by the UI input dispatcher
// ABOUTME: Sealed set of user intents the player loop applies
package player

// Command is a user-intent message sent from the UI to the player.
// The set is closed; each variant carries exactly what the player
// needs to apply it.
type Command interface {
	isCommand()
}

// AdjustVolume shifts the volume by a bounded fraction, never an
// absolute value.
type AdjustVolume struct {
	Delta float64
}

// SkipTrack advances to the next track in the queue.
type SkipTrack struct{}

// TogglePause flips the paused state.
type TogglePause struct{}

func (AdjustVolume) isCommand() {}
func (SkipTrack) isCommand()    {}
func (TogglePause) isCommand()  {}
