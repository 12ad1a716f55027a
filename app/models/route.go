package models

// HomeFragment is the canonical fragment of the home route.
const HomeFragment = "#/"

// PostFragment builds the fragment that routes to the post with slug.
func PostFragment(slug string) string {
	return "#/post/" + slug
}

func HomeRoute() Route { return Route{Kind: RouteHome} }

func PostRoute(slug string) Route { return Route{Kind: RoutePost, Slug: slug} }

func NotFoundRoute() Route { return Route{Kind: RouteNotFound} }

// Fragment returns the canonical fragment for r. NotFound has none and
// returns the empty string.
func (r Route) Fragment() string {
	switch r.Kind {
	case RouteHome:
		return HomeFragment
	case RoutePost:
		return PostFragment(r.Slug)
	default:
		return ""
	}
}

func (k RouteKind) String() string {
	switch k {
	case RouteHome:
		return "home"
	case RoutePost:
		return "post"
	default:
		return "not_found"
	}
}

// MarshalText lets RouteKind appear by name in JSON and logs.
func (k RouteKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
