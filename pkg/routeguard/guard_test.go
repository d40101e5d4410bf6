package routeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

func authed(role laundry.Role) State {
	return State{Authenticated: true, Role: role}
}

func TestGuard_Initializing(t *testing.T) {
	g := New()

	d := g.Resolve(State{Initializing: true}, "/customer/home")
	assert.Equal(t, Hold, d.Action)
}

func TestGuard_Unauthenticated(t *testing.T) {
	g := New()

	t.Run("Redirects To Login With Query", func(t *testing.T) {
		d := g.Resolve(State{}, "/customer/order-details?id=42")

		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, "/auth/login?id=42", d.Target)
	})

	t.Run("Auth Paths Pass Through", func(t *testing.T) {
		for _, p := range []string{LoginPath, OTPPath, CompleteProfilePath} {
			d := g.Resolve(State{}, p)
			assert.Equal(t, Allow, d.Action, p)
		}
	})

	t.Run("Indeterminate Role Fails Safe To Login", func(t *testing.T) {
		d := g.Resolve(State{Authenticated: true, Role: "???"}, "/admin/dashboard")

		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, LoginPath, d.Target)
	})
}

func TestGuard_NewUser(t *testing.T) {
	g := New()
	s := State{Authenticated: true, NewUser: true, Role: laundry.RoleCustomer}

	t.Run("Always Redirected To Profile Completion", func(t *testing.T) {
		for _, p := range []string{"/customer/home", "/auth/login", "/orders"} {
			d := g.Resolve(s, p)
			assert.Equal(t, Redirect, d.Action, p)
			assert.Equal(t, CompleteProfilePath, d.Target, p)
		}
	})

	t.Run("Profile Completion Itself Allowed", func(t *testing.T) {
		d := g.Resolve(s, CompleteProfilePath)
		assert.Equal(t, Allow, d.Action)
	})
}

func TestGuard_AuthGroupAfterLogin(t *testing.T) {
	g := New()

	cases := map[laundry.Role]string{
		laundry.RoleCustomer: "/customer/home",
		laundry.RoleDelivery: "/delivery/dashboard",
		laundry.RoleAdmin:    "/admin/dashboard",
	}

	for role, home := range cases {
		d := g.Resolve(authed(role), LoginPath)
		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, home, d.Target)
	}
}

func TestGuard_GenericPathRemap(t *testing.T) {
	g := New()

	t.Run("Leaf Exists In Role Group", func(t *testing.T) {
		d := g.Resolve(authed(laundry.RoleDelivery), "/orders")
		assert.Equal(t, "/delivery/orders", d.Target)

		d = g.Resolve(authed(laundry.RoleAdmin), "/dashboard")
		assert.Equal(t, "/admin/dashboard", d.Target)

		d = g.Resolve(authed(laundry.RoleCustomer), "/profile")
		assert.Equal(t, "/customer/profile", d.Target)
	})

	t.Run("Unknown Leaf Falls Back To Home", func(t *testing.T) {
		d := g.Resolve(authed(laundry.RoleCustomer), "/payouts")
		assert.Equal(t, "/customer/home", d.Target)
	})

	t.Run("Query Preserved", func(t *testing.T) {
		d := g.Resolve(authed(laundry.RoleAdmin), "/order-details?id=9&tab=items")
		assert.Equal(t, Redirect, d.Action)
		assert.Equal(t, "/admin/order-details?id=9&tab=items", d.Target)
	})
}

func TestGuard_ForeignRoleGroup(t *testing.T) {
	g := New()

	t.Run("Context Preserving Remap", func(t *testing.T) {
		// Delivery agent hitting an admin screen lands on the delivery
		// equivalent, not the generic dashboard fallback.
		d := g.Resolve(authed(laundry.RoleDelivery), "/admin/orders")
		assert.Equal(t, "/delivery/orders", d.Target)

		d = g.Resolve(authed(laundry.RoleAdmin), "/delivery/profile")
		assert.Equal(t, "/admin/profile", d.Target)
	})

	t.Run("No Analog Falls Back To Home", func(t *testing.T) {
		// Admin pricing screen has no delivery analog.
		d := g.Resolve(authed(laundry.RoleDelivery), "/admin/pricing")
		assert.Equal(t, "/delivery/dashboard", d.Target)

		// Customer checkout has no admin analog.
		d = g.Resolve(authed(laundry.RoleAdmin), "/customer/checkout")
		assert.Equal(t, "/admin/dashboard", d.Target)
	})

	t.Run("Query Preserved Across Groups", func(t *testing.T) {
		d := g.Resolve(authed(laundry.RoleDelivery), "/admin/orders?status=requested")
		assert.Equal(t, "/delivery/orders?status=requested", d.Target)
	})
}

func TestGuard_OwnGroupAllowed(t *testing.T) {
	g := New()

	for _, p := range []string{"/customer/home", "/customer/cart", "/customer/order-details?id=1"} {
		d := g.Resolve(authed(laundry.RoleCustomer), p)
		assert.Equal(t, Allow, d.Action, p)
	}
}
