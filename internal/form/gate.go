package form

import (
	"fmt"
	"strings"
)

// SubmitGate decides when the submit control is disabled.
type SubmitGate int

const (
	// GateLive re-validates the current field values once a validation pass
	// has run, so fixing a field re-enables submit straight away.
	GateLive SubmitGate = iota
	// GateLastPass disables submit while the last validation pass reported
	// errors, even if the fields have since been corrected.
	GateLastPass
)

func ParseSubmitGate(s string) (SubmitGate, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "live":
		return GateLive, nil
	case "last-pass":
		return GateLastPass, nil
	}
	return GateLive, fmt.Errorf("unknown submit gate %q", s)
}

func (g SubmitGate) String() string {
	if g == GateLastPass {
		return "last-pass"
	}
	return "live"
}
