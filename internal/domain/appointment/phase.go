package appointment

// ===============================
// Submission phase
// ===============================

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseAccepted Phase = "accepted"
)

// ===============================
// Transitions
// ===============================

// AfterValidation is where a submission cycle lands once its validation pass
// has run: accepted when nothing failed, back to idle otherwise.
func AfterValidation(result ValidationResult) Phase {
	if result.Valid() {
		return PhaseAccepted
	}
	return PhaseIdle
}

// PhaseOf derives the resting phase from the success flag.
func PhaseOf(submitted bool) Phase {
	if submitted {
		return PhaseAccepted
	}
	return PhaseIdle
}
