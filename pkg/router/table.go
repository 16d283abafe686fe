package router

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table is an ordered route dispatch table. Matching walks the entries in
// order and the first hit wins; paths matching nothing fall back to the
// public landing page, never to an error.
type Table struct {
	routes   []Route
	fallback Page
}

// DefaultTable returns the product's route table: marketing pages and the
// auth screen public, everything under /dashboard protected.
func DefaultTable() *Table {
	return &Table{
		fallback: PageLanding,
		routes: []Route{
			{Pattern: "/auth", Page: PageAuth, Prefix: true},
			{Pattern: "/about", Page: PageAbout},
			{Pattern: "/learn-more", Page: PageLearnMore},
			{Pattern: "/", Page: PageLanding},
			{Pattern: "/dashboard", Page: PageDashboard, Protected: true},
			{Pattern: "/dashboard/uploads", Page: PageUploads, Protected: true},
			{Pattern: "/dashboard/insights", Page: PageInsights, Protected: true},
			{Pattern: "/dashboard/settings", Page: PageSettings, Protected: true},
			{Pattern: "/dashboard/profile", Page: PageProfile, Protected: true},
			// Any other path under the protected prefix lands on the
			// dashboard rather than 404ing inside the shell.
			{Pattern: "/dashboard", Page: PageDashboard, Protected: true, Prefix: true},
		},
	}
}

// tableFile is the YAML document shape for LoadTable.
type tableFile struct {
	Fallback Page    `yaml:"fallback"`
	Routes   []Route `yaml:"routes"`
}

// LoadTable reads a route table from YAML. Entry order in the file is the
// match priority. An empty fallback defaults to the landing page.
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	if len(file.Routes) == 0 {
		return nil, fmt.Errorf("%w: no routes defined", ErrInvalidTable)
	}

	for i, route := range file.Routes {
		if !strings.HasPrefix(route.Pattern, "/") {
			return nil, fmt.Errorf("%w: route %d: pattern %q must start with /", ErrInvalidTable, i, route.Pattern)
		}
		if route.Page == "" {
			return nil, fmt.Errorf("%w: route %d: page is required", ErrInvalidTable, i)
		}
	}

	fallback := file.Fallback
	if fallback == "" {
		fallback = PageLanding
	}

	return &Table{routes: file.Routes, fallback: fallback}, nil
}

// Match returns the first route matching path, or a synthetic fallback
// route when nothing matches.
func (t *Table) Match(path string) Route {
	for _, route := range t.routes {
		if route.Prefix {
			if strings.HasPrefix(path, route.Pattern) {
				return route
			}
			continue
		}
		if path == route.Pattern {
			return route
		}
	}
	return Route{Pattern: path, Page: t.fallback}
}
