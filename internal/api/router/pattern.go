// internal/api/router/pattern.go
package router

import (
	"fmt"
	"regexp"
)

// Params are the values captured from a request path. When a pattern has any named group,
// Named holds them and Positional is empty; otherwise Positional holds every group in order.
type Params struct {
	Named      map[string]string
	Positional []string
}

// Get returns a named parameter.
func (p Params) Get(name string) (string, bool) {
	v, ok := p.Named[name]
	return v, ok
}

// Pattern is a compiled route expression. Matching searches the path, so expressions
// that must match the whole path anchor themselves with ^ and $.
type Pattern struct {
	expr  string
	re    *regexp.Regexp
	names []string
	named bool
}

// Compile compiles a route expression.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("router: invalid pattern %q: %w", expr, err)
	}
	p := &Pattern{expr: expr, re: re, names: re.SubexpNames()}
	for _, n := range p.names {
		if n != "" {
			p.named = true
			break
		}
	}
	return p, nil
}

// MustCompile is Compile for expressions known at startup.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) String() string {
	return p.expr
}

// Match reports whether path matches and returns the captured parameters.
func (p *Pattern) Match(path string) (Params, bool) {
	groups := p.re.FindStringSubmatch(path)
	if groups == nil {
		return Params{}, false
	}
	if p.named {
		named := make(map[string]string)
		for i, name := range p.names {
			if i > 0 && name != "" {
				named[name] = groups[i]
			}
		}
		return Params{Named: named}, true
	}
	return Params{Positional: groups[1:]}, true
}
