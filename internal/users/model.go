package users

import (
	"strings"
	"time"
)

// DefaultPlanCode is assigned on first sign-in. The plans catalog seeds a
// plan with this code.
const DefaultPlanCode = "plan-free"

// User is an account that owns CVs and review sessions. The ID carries the
// identity provider as a prefix ("google:<sub>", "guest:<uuid>").
type User struct {
	ID         string
	Email      string
	FullName   string
	GivenName  string
	FamilyName string
	PictureURL string
	PlanCode   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Provider returns the identity provider encoded in the user ID, or "" when
// the ID carries no prefix.
func (u User) Provider() string {
	if i := strings.IndexByte(u.ID, ':'); i > 0 {
		return u.ID[:i]
	}
	return ""
}

// Profile is the account view served to the UI: the stored identity plus the
// CV the builder should open on load.
type Profile struct {
	User
	CurrentCVID string
}
