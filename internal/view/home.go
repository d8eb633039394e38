// Package view holds the server-rendered HTML pages.
package view

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

// Endpoint describes one API route on the landing page.
type Endpoint struct {
	Method      string
	Path        string
	Description string
	Auth        bool
}
