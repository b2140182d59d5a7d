package shooter

// Channel identifies one of the independent audio channels the game drives.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelFire
	ChannelDestroy
)

func (c Channel) String() string {
	switch c {
	case ChannelMusic:
		return "music"
	case ChannelFire:
		return "fire"
	case ChannelDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Audio is the sound collaborator. Calls are fire-and-forget; implementations
// must tolerate missing or failed channels.
type Audio interface {
	Play(ch Channel)
	Pause(ch Channel)
	Rewind(ch Channel)
	// Restart rewinds and plays, so overlapping triggers start from the top.
	Restart(ch Channel)
	SetMuted(muted bool)
}

// Silent discards every call.
type Silent struct{}

func (Silent) Play(Channel)    {}
func (Silent) Pause(Channel)   {}
func (Silent) Rewind(Channel)  {}
func (Silent) Restart(Channel) {}
func (Silent) SetMuted(bool)   {}
