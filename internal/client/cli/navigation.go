package cli

// Route names a screen.
type Route string

const (
	RouteSignIn    Route = "SignIn"
	RouteSignUp    Route = "SignUp"
	RouteDashboard Route = "Dashboard"
)

// Navigator is a stack of routes. The bottom entry is the root and is
// never popped.
type Navigator struct {
	stack []Route
}

func NewNavigator(root Route) *Navigator {
	return &Navigator{stack: []Route{root}}
}

func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Navigate pushes route unless it is already on top.
func (n *Navigator) Navigate(route Route) {
	if n.Current() == route {
		return
	}
	n.stack = append(n.stack, route)
}

// GoBack pops the top route and reports whether it could.
func (n *Navigator) GoBack() bool {
	if len(n.stack) == 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Reset drops the history and makes route the new root.
func (n *Navigator) Reset(route Route) {
	n.stack = []Route{route}
}
