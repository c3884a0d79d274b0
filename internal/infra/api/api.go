// Package api is the token-aware HTTP client every service module talks through.
//
// The client:
//   - attaches the stored access token as a bearer header
//   - sends JSON unless the body is a multipart Form
//   - on a 401 refreshes the access token once and replays the request
//   - clears the session and calls the session-expired hook when the refresh fails
//   - normalizes every failure into *Error with a displayable message
//
// # Quick Start
//
//	store := file.NewTokenStore(afero.NewOsFs(), file.DefaultPath(), "default")
//	client := api.NewClient(api.Config{BaseURL: "https://api.example.com"}, store,
//	    api.WithSessionExpiredHandler(func() { fmt.Println("session expired, log in again") }),
//	)
//
//	resp, err := client.Get(ctx, "/admin/tours", url.Values{"page": {"1"}})
//
// Concurrent requests that hit a 401 share one refresh call; a request rejected
// with a token that has since been replaced replays with the new token without
// refreshing again.
package api
