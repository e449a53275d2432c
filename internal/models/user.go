package models

type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
	RoleStudent  Role = "student"
)

// UserSummary is the cached snapshot of the backend's user record. The
// authoritative copy lives in the remote backend; this is only what the
// login response echoed back, stored in the hp_user cookie.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

// LoginPath is where every unauthenticated or unrecognized visitor ends up.
const LoginPath = "/login"

var landingPaths = map[Role]string{
	RoleOwner:    "/admin",
	RoleEmployee: "/staff",
	RoleStudent:  "/student",
}

// LandingPath returns the dashboard path for a role. Unknown roles fall
// back to the login page.
func LandingPath(role Role) string {
	if path, ok := landingPaths[role]; ok {
		return path
	}
	return LoginPath
}

// KnownRole reports whether the role has a dashboard section.
func KnownRole(role Role) bool {
	_, ok := landingPaths[role]
	return ok
}

// Guard pairs a path prefix with the role allowed under it.
type Guard struct {
	Prefix string
	Role   Role
}

// Guards lists the protected prefixes in match order. First matching
// prefix wins; the prefixes are disjoint in practice but the order is
// kept stable for determinism.
var Guards = []Guard{
	{Prefix: "/admin", Role: RoleOwner},
	{Prefix: "/staff", Role: RoleEmployee},
	{Prefix: "/student", Role: RoleStudent},
}
