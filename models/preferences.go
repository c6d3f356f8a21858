package models

import "encoding/json"

// PreferenceKind selects which of the two per-user preference documents an
// operation targets.
type PreferenceKind string

const (
	// KindRequirements is the user's saved search requirements document.
	KindRequirements PreferenceKind = "requirements"

	// KindShortlist is the user's saved property shortlist document.
	KindShortlist PreferenceKind = "shortlist"
)

// String returns the kind as a plain string. It doubles as the name of the
// top-level key the save payload must carry.
func (k PreferenceKind) String() string {
	return string(k)
}

// TableName returns the database table holding documents of this kind.
func (k PreferenceKind) TableName() string {
	if k == KindShortlist {
		return "user_shortlist"
	}
	return "user_requirements"
}

// Column returns the content column of the kind's table.
func (k PreferenceKind) Column() string {
	return string(k)
}

// PreferenceDocument is the stored form of a user's requirements or shortlist:
// an opaque JSON payload plus bookkeeping fields. The payload is replaced
// wholesale on every save; there is no partial merge.
type PreferenceDocument struct {
	ID        int64           `json:"-"`
	UserID    int64           `json:"-"`
	Kind      PreferenceKind  `json:"-"`
	Content   json.RawMessage `json:"content"`
	UpdatedAt string          `json:"-"`
}

// SaveAck is the success envelope returned by the preference save endpoints.
type SaveAck struct {
	Success bool `json:"success"`
}
