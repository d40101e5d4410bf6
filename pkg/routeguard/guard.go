// Package routeguard decides, for an auth/role state and a requested path,
// whether navigation may proceed or where it must be redirected. It is a UX
// aid only: it grants no security, and every API request is still authorized
// server-side by token and role.
package routeguard

import (
	"net/url"
	"strings"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// Path groups. Leaves are the screen names reachable inside each role group.
const (
	LoginPath           = "/auth/login"
	OTPPath             = "/auth/otp"
	CompleteProfilePath = "/auth/complete-profile"
)

var roleHomes = map[laundry.Role]string{
	laundry.RoleCustomer: "/customer/home",
	laundry.RoleDelivery: "/delivery/dashboard",
	laundry.RoleAdmin:    "/admin/dashboard",
}

var roleLeaves = map[laundry.Role]map[string]bool{
	laundry.RoleCustomer: {
		"home": true, "services": true, "select-items": true, "cart": true,
		"checkout": true, "orders": true, "order-details": true, "profile": true,
	},
	laundry.RoleDelivery: {
		"dashboard": true, "orders": true, "history": true,
		"order-details": true, "profile": true,
	},
	laundry.RoleAdmin: {
		"dashboard": true, "orders": true, "pricing": true,
		"order-details": true, "profile": true,
	},
}

var roleGroups = map[string]laundry.Role{
	"customer": laundry.RoleCustomer,
	"delivery": laundry.RoleDelivery,
	"admin":    laundry.RoleAdmin,
}

// State is the auth snapshot the guard evaluates. It is read-only here; the
// session manager owns mutation.
type State struct {
	Initializing  bool
	Authenticated bool
	NewUser       bool
	Role          laundry.Role
}

type Action int

const (
	// Hold means take no navigation action yet (session still restoring);
	// the caller should render a loading indicator.
	Hold Action = iota
	// Allow lets the requested navigation proceed unchanged.
	Allow
	// Redirect replaces the navigation with Decision.Target.
	Redirect
)

// Decision is the guard's verdict. Target carries the original query string
// when the action is Redirect.
type Decision struct {
	Action Action
	Target string
}

// request is the parsed navigation attempt handed to each rule.
type request struct {
	path  string
	query url.Values
	group string // "auth", "customer", "delivery", "admin", or "" for generic paths
	leaf  string // last path segment
}

// A rule inspects the state and request and either returns a decision or
// passes to the next rule.
type rule func(s State, r request) *Decision

// Guard evaluates an ordered rule list; the first rule that returns a
// decision wins.
type Guard struct {
	rules []rule
}

// New returns a guard with the standard rule chain, in priority order.
func New() *Guard {
	return &Guard{rules: []rule{
		holdWhileInitializing,
		requireLogin,
		forceProfileCompletion,
		leaveAuthGroup,
		remapGenericPath,
		remapForeignRoleGroup,
	}}
}

// Resolve parses the requested URL (path plus optional query) and runs the
// rule chain. Unparseable input fails safe to the login redirect.
func (g *Guard) Resolve(s State, rawURL string) Decision {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Decision{Action: Redirect, Target: LoginPath}
	}

	r := parseRequest(u)
	for _, rl := range g.rules {
		if d := rl(s, r); d != nil {
			return *d
		}
	}
	return Decision{Action: Allow}
}

func parseRequest(u *url.URL) request {
	r := request{path: u.Path, query: u.Query()}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) > 0 && segments[0] != "" {
		head := segments[0]
		if head == "auth" {
			r.group = "auth"
		} else if _, ok := roleGroups[head]; ok {
			r.group = head
		}
		r.leaf = segments[len(segments)-1]
	}
	return r
}

// redirect builds a redirect decision, reattaching the original query
// parameters unmodified.
func redirect(target string, query url.Values) *Decision {
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return &Decision{Action: Redirect, Target: target}
}

func allow() *Decision {
	return &Decision{Action: Allow}
}

// Rule 1: while the session is being restored, do nothing.
func holdWhileInitializing(s State, _ request) *Decision {
	if s.Initializing {
		return &Decision{Action: Hold}
	}
	return nil
}

// Rule 2: unauthenticated users may only visit the auth group. An
// indeterminate role on an authenticated state is treated the same way: the
// safe default is login.
func requireLogin(s State, r request) *Decision {
	if s.Authenticated && laundry.ValidRole(s.Role) {
		return nil
	}
	if r.group == "auth" {
		return allow()
	}
	return redirect(LoginPath, r.query)
}

// Rule 3: a new user must complete their profile before anything else. This
// wins over role routing regardless of the requested path.
func forceProfileCompletion(s State, r request) *Decision {
	if !s.NewUser {
		return nil
	}
	if r.path == CompleteProfilePath {
		return allow()
	}
	return redirect(CompleteProfilePath, r.query)
}

// Rule 4: an authenticated user revisiting the auth group goes to their
// role's home screen.
func leaveAuthGroup(s State, r request) *Decision {
	if r.group != "auth" {
		return nil
	}
	return redirect(roleHomes[s.Role], r.query)
}

// Rule 5: a generic path not namespaced to any role group is remapped to the
// role-specific equivalent when that screen exists, else to the role home.
func remapGenericPath(s State, r request) *Decision {
	if r.group != "" {
		return nil
	}
	if r.leaf != "" && roleLeaves[s.Role][r.leaf] {
		return redirect("/"+string(s.Role)+"/"+r.leaf, r.query)
	}
	return redirect(roleHomes[s.Role], r.query)
}

// Rule 6: a path inside another role's group is remapped to the same leaf
// screen in the user's own group when a direct analog exists; otherwise it
// falls back to the role home.
func remapForeignRoleGroup(s State, r request) *Decision {
	group, ok := roleGroups[r.group]
	if !ok || group == s.Role {
		return nil
	}
	if roleLeaves[s.Role][r.leaf] {
		return redirect("/"+string(s.Role)+"/"+r.leaf, r.query)
	}
	return redirect(roleHomes[s.Role], r.query)
}

// Home returns the home path for a role.
func Home(role laundry.Role) string {
	return roleHomes[role]
}
