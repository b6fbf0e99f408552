// Package diff walks a baseline and a candidate spec model and produces
// raw change records. Classification into compatibility rules happens
// later, in the rules package.
package diff

import (
	"sort"

	"apichangeguard/internal/spec"
)

// Kind enumerates the raw structural change types.
type Kind int

const (
	KindEndpointAdded Kind = iota
	KindEndpointRemoved
	KindParamAdded
	KindParamRemoved
	KindParamRequiredChanged
	KindParamTypeChanged
	KindResponseAdded
	KindResponseRemoved
)

// Change is one raw structural difference between baseline and candidate.
// Only the fields relevant to the Kind are populated.
type Change struct {
	Kind   Kind
	Path   string
	Method string

	// Parameter changes
	Param       string
	Required    bool // param's required flag in the candidate
	OldRequired bool
	OldType     string
	NewType     string

	// Response changes
	StatusCode int
}

// Compare walks both documents and returns the changes in a deterministic
// order: endpoints by (path, method), then parameters by name, then
// responses by status code. Endpoints absent from both sides are never
// visited; a removed endpoint produces no per-child changes.
func Compare(baseline, candidate *spec.Document) []Change {
	var changes []Change

	for _, k := range sortedKeys(baseline, candidate) {
		base, inBase := baseline.Endpoints[k]
		cand, inCand := candidate.Endpoints[k]

		switch {
		case inBase && !inCand:
			changes = append(changes, Change{
				Kind: KindEndpointRemoved, Path: k.Path, Method: k.Method,
			})
		case !inBase && inCand:
			changes = append(changes, Change{
				Kind: KindEndpointAdded, Path: k.Path, Method: k.Method,
			})
		default:
			changes = append(changes, compareEndpoint(k, base, cand)...)
		}
	}

	return changes
}

func compareEndpoint(k spec.EndpointKey, base, cand spec.Endpoint) []Change {
	var changes []Change

	for _, name := range sortedParamNames(base, cand) {
		bp, inBase := base.Parameters[name]
		cp, inCand := cand.Parameters[name]

		switch {
		case inBase && !inCand:
			changes = append(changes, Change{
				Kind: KindParamRemoved, Path: k.Path, Method: k.Method, Param: name,
			})
		case !inBase && inCand:
			changes = append(changes, Change{
				Kind: KindParamAdded, Path: k.Path, Method: k.Method,
				Param: name, Required: cp.Required,
			})
		default:
			if bp.Required != cp.Required {
				changes = append(changes, Change{
					Kind: KindParamRequiredChanged, Path: k.Path, Method: k.Method,
					Param: name, Required: cp.Required, OldRequired: bp.Required,
				})
			}
			if bp.Type != cp.Type {
				changes = append(changes, Change{
					Kind: KindParamTypeChanged, Path: k.Path, Method: k.Method,
					Param: name, OldType: bp.Type, NewType: cp.Type,
				})
			}
		}
	}

	for _, code := range sortedResponseCodes(base, cand) {
		inBase := base.Responses[code]
		inCand := cand.Responses[code]

		switch {
		case inBase && !inCand:
			changes = append(changes, Change{
				Kind: KindResponseRemoved, Path: k.Path, Method: k.Method, StatusCode: code,
			})
		case !inBase && inCand:
			changes = append(changes, Change{
				Kind: KindResponseAdded, Path: k.Path, Method: k.Method, StatusCode: code,
			})
		}
	}

	return changes
}

func sortedKeys(a, b *spec.Document) []spec.EndpointKey {
	seen := make(map[spec.EndpointKey]bool, len(a.Endpoints)+len(b.Endpoints))
	var keys []spec.EndpointKey
	for k := range a.Endpoints {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for k := range b.Endpoints {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Path != keys[j].Path {
			return keys[i].Path < keys[j].Path
		}
		return keys[i].Method < keys[j].Method
	})
	return keys
}

func sortedParamNames(base, cand spec.Endpoint) []string {
	seen := make(map[string]bool, len(base.Parameters)+len(cand.Parameters))
	var names []string
	for name := range base.Parameters {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range cand.Parameters {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func sortedResponseCodes(base, cand spec.Endpoint) []int {
	seen := make(map[int]bool, len(base.Responses)+len(cand.Responses))
	var codes []int
	for code := range base.Responses {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for code := range cand.Responses {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Ints(codes)
	return codes
}
