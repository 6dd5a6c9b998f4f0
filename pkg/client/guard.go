package client

import "strings"

// Route names as the front-end knows them.
const (
	RouteRoot          = "/"
	RouteLogin         = "/login"
	RouteUnauthorized  = "/unauthorized"
	RouteDashboard     = "/dashboard"
	RouteUserDashboard = "/user-dashboard"
)

// Decision is the outcome of evaluating a route against a session.
type Decision int

const (
	// DecisionPending suspends navigation while the session is loading.
	DecisionPending Decision = iota
	// DecisionGrant renders the requested route.
	DecisionGrant
	// DecisionRedirect sends the user to Outcome.Target instead.
	DecisionRedirect
)

// Outcome pairs a Decision with the redirect target when one applies.
type Outcome struct {
	Decision Decision
	Target   string
}

type routeRule struct {
	requiresAuth  bool
	requiresAdmin bool
}

// Admin-only screens; anything under /admin/ is covered by prefix.
var routeRules = map[string]routeRule{
	RouteLogin:         {},
	RouteUnauthorized:  {},
	RouteDashboard:     {requiresAuth: true, requiresAdmin: true},
	RouteUserDashboard: {requiresAuth: true},
}

// Decide is a pure function of the route and the current session; it is
// re-evaluated on every navigation and never caches prior outcomes. While
// the session is loading no redirect is ever issued.
func Decide(route string, sess Session) Outcome {
	if sess.Loading {
		return Outcome{Decision: DecisionPending}
	}

	if route == RouteRoot {
		return resolveRoot(sess)
	}

	rule, ok := routeRules[route]
	if !ok {
		if strings.HasPrefix(route, "/admin/") {
			rule = routeRule{requiresAuth: true, requiresAdmin: true}
		} else {
			rule = routeRule{requiresAuth: true}
		}
	}

	if rule.requiresAuth && !sess.IsAuthenticated {
		return Outcome{Decision: DecisionRedirect, Target: RouteLogin}
	}
	if rule.requiresAdmin && !sess.IsAdmin {
		return Outcome{Decision: DecisionRedirect, Target: RouteUnauthorized}
	}
	return Outcome{Decision: DecisionGrant}
}

// resolveRoot picks the landing screen for the bare root route.
func resolveRoot(sess Session) Outcome {
	switch {
	case !sess.IsAuthenticated:
		return Outcome{Decision: DecisionRedirect, Target: RouteLogin}
	case sess.IsAdmin:
		return Outcome{Decision: DecisionRedirect, Target: RouteDashboard}
	default:
		return Outcome{Decision: DecisionRedirect, Target: RouteUserDashboard}
	}
}

// CanAccess reports whether the session may render the route outright.
func CanAccess(route string, sess Session) bool {
	return Decide(route, sess).Decision == DecisionGrant
}
