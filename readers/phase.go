package readers

type Phase uint8

const (
	// Idle: nothing started yet
	Idle Phase = iota
	// Playing: an advancement is pending
	Playing
	// Paused: positioned, nothing pending
	Paused
	// Finished: moved past the last token; terminal until Start
	Finished
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return "unknown"
}
