package api

import "fmt"

// Link is a single HATEOAS link object.
type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method"`
}

// ResourceLinks builds the conventional self/update/delete link set for a
// single resource, e.g. /users/{id} or /ingredients/{id}.
func ResourceLinks(collection, id string) map[string]Link {
	href := fmt.Sprintf("/%s/%s", collection, id)
	return map[string]Link{
		"self":   {Rel: "self", Href: href, Method: "GET"},
		"update": {Rel: "update", Href: href, Method: "PUT"},
		"delete": {Rel: "delete", Href: href, Method: "DELETE"},
	}
}

// SignupLinks points a freshly registered user at the signin endpoint.
func SignupLinks() map[string]Link {
	return map[string]Link{
		"signin": {Rel: "signin", Href: "/auth/signin", Method: "POST"},
	}
}

// SigninLinks returns the follow-up links for a successful signin.
func SigninLinks(userID string) map[string]Link {
	return map[string]Link{
		"self":    {Rel: "self", Href: "/auth/signin", Method: "POST"},
		"logout":  {Rel: "logout", Href: "/auth/signout", Method: "POST"},
		"profile": {Rel: "profile", Href: "/users/" + userID, Method: "GET"},
	}
}

// ListLinks builds the string-valued self/next/prev links for a paginated
// collection response.
func ListLinks(collection string, page, limit, totalPage int, sort, sortType, search string) map[string]string {
	build := func(p int) string {
		href := fmt.Sprintf("/%s?limit=%d&sort=%s&sort_type=%s&page=%d", collection, limit, sort, sortType, p)
		if search != "" {
			href += "&search=" + search
		}
		return href
	}
	links := map[string]string{"self": build(page)}
	if page < totalPage {
		links["next"] = build(page + 1)
	}
	if page > 1 {
		links["prev"] = build(page - 1)
	}
	return links
}
