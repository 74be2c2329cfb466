package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// ModuleGraph records which modules import which.
// Modules keep their insertion order, which makes ordering reproducible between runs.
type ModuleGraph struct {
	modules  []string
	deps     map[string][]string
	external map[string]struct{}
}

// NewModuleGraph creates an empty graph.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{
		deps:     make(map[string][]string),
		external: make(map[string]struct{}),
	}
}

// AddModule adds a module and the names it imports.
// Duplicate imports are collapsed. Adding the same module twice is an error.
func (g *ModuleGraph) AddModule(name string, deps []string) error {
	if _, exists := g.deps[name]; exists {
		return zerr.With(zerr.Wrap(ErrModuleAlreadyExists, "cannot add module"), "module", name)
	}
	g.modules = append(g.modules, name)
	g.deps[name] = uniqueStrings(deps)
	return nil
}

// AddExternal marks names as satisfied outside the graph, such as prebuilt standard library modules.
func (g *ModuleGraph) AddExternal(names ...string) {
	for _, name := range names {
		g.external[name] = struct{}{}
	}
}

// Len returns the number of modules in the graph.
func (g *ModuleGraph) Len() int {
	return len(g.modules)
}

// Modules returns the module names in insertion order.
func (g *ModuleGraph) Modules() []string {
	return slices.Clone(g.modules)
}

// Dependencies returns the declared imports of a module.
func (g *ModuleGraph) Dependencies(name string) []string {
	return slices.Clone(g.deps[name])
}

// TopologicalOrder returns every module after all modules it imports.
// Among modules that become ready at the same time the order follows insertion, but callers
// should treat independent modules as unordered.
// A cycle fails the whole ordering; no partial order is returned.
func (g *ModuleGraph) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.modules))
	dependents := make(map[string][]string, len(g.modules))

	for _, name := range g.modules {
		for _, dep := range g.deps[name] {
			if _, ok := g.deps[dep]; ok {
				inDegree[name]++
				dependents[dep] = append(dependents[dep], name)
				continue
			}
			if _, ok := g.external[dep]; !ok {
				return nil, zerr.With(zerr.With(zerr.Wrap(ErrUnknownDependency, "cannot order modules"), "module", name), "dependency", dep)
			}
		}
	}

	queue := make([]string, 0, len(g.modules))
	for _, name := range g.modules {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	sorted := make([]string, 0, len(g.modules))
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		sorted = append(sorted, u)
		for _, v := range dependents[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(sorted) != len(g.modules) {
		var unresolved []string
		for _, name := range g.modules {
			if inDegree[name] > 0 {
				unresolved = append(unresolved, name)
			}
		}
		return nil, zerr.With(zerr.Wrap(ErrCircularDependency, "cannot order modules"), "modules", unresolved)
	}

	return sorted, nil
}
