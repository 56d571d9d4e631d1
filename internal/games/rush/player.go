package rush

// PlayerState is the pose of the player character.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerAttack
	PlayerShield
	PlayerJump
	PlayerDead
)

func (p PlayerState) String() string {
	switch p {
	case PlayerIdle:
		return "Idle"
	case PlayerAttack:
		return "Attack"
	case PlayerShield:
		return "Shield"
	case PlayerJump:
		return "Jump"
	case PlayerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Alive reports whether the pose belongs to a living player.
func (p PlayerState) Alive() bool {
	return p != PlayerDead
}

func poseFor(a ActionKind) PlayerState {
	switch a {
	case Attack:
		return PlayerAttack
	case Shield:
		return PlayerShield
	case Jump:
		return PlayerJump
	default:
		return PlayerIdle
	}
}
