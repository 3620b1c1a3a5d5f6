// Package models defines the canonical gallery entities shared by the
// gateway, the state store and the CLI.
package models

// ScopeKind names the data partition a gallery operation targets.
type ScopeKind string

const (
	ScopePersonal ScopeKind = "personal"
	ScopeCircle   ScopeKind = "circle"
)

// Scope is either the personal partition or one circle's shared partition.
// The zero value is the personal scope.
type Scope struct {
	Kind     ScopeKind
	CircleID string
}

func PersonalScope() Scope { return Scope{Kind: ScopePersonal} }

func CircleScope(circleID string) Scope {
	return Scope{Kind: ScopeCircle, CircleID: circleID}
}

// IsPersonal reports whether s targets the personal partition.
func (s Scope) IsPersonal() bool {
	return s.Kind != ScopeCircle
}

// OwnerCircleID is the circleId entities of this scope carry: "" for personal.
func (s Scope) OwnerCircleID() string {
	if s.IsPersonal() {
		return ""
	}
	return s.CircleID
}

func (s Scope) String() string {
	if s.IsPersonal() {
		return string(ScopePersonal)
	}
	return string(ScopeCircle) + "/" + s.CircleID
}
