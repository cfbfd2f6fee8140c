package graph

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/voidshard/sitegraph/internal/geom"
)

// Rule decides which pairs of points are joined by an edge.
type Rule int

const (
	// RuleBisector joins i & j if their perpendicular bisector, clipped to the
	// domain, is non-empty. Since every pair's midpoint sits inside the domain
	// this is nearly always a complete graph; it matches the bisector overlay
	// exactly.
	RuleBisector Rule = iota

	// RuleKNearest joins each point to its K nearest others. Edges are
	// undirected so a point may end up with more than K.
	RuleKNearest

	// RuleDelaunay joins i & j if their Voronoi cells share an edge
	// (the bisector survives clipping against every other site).
	RuleDelaunay
)

// DefaultK is the neighbour count for RuleKNearest if none is given.
const DefaultK = 3

var ruleNames = map[Rule]string{
	RuleBisector: "bisector",
	RuleKNearest: "knearest",
	RuleDelaunay: "delaunay",
}

// String returns the rule's name.
func (r Rule) String() string {
	name, ok := ruleNames[r]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseRule turns a rule name (as given by String) into a Rule.
func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range ruleNames {
		if name == s {
			return r, nil
		}
	}
	return RuleBisector, errors.Wrapf(geom.ErrOptionViolation, "unknown rule %q", s)
}

type options struct {
	rule Rule
	k    int
}

// Option configures Build.
type Option func(*options) error

// WithRule sets the adjacency rule. Default RuleBisector.
func WithRule(r Rule) Option {
	return func(o *options) error {
		if _, ok := ruleNames[r]; !ok {
			return errors.Wrapf(geom.ErrOptionViolation, "unknown rule %d", r)
		}
		o.rule = r
		return nil
	}
}

// WithK sets the neighbour count for RuleKNearest. Must be > 0.
func WithK(k int) Option {
	return func(o *options) error {
		if k <= 0 {
			return errors.Wrapf(geom.ErrOptionViolation, "k must be > 0, got %d", k)
		}
		o.k = k
		return nil
	}
}
