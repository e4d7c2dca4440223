package symtab

import "strings"

// Table manages the nested scope hierarchy for one translation unit. A
// module may be reopened within the file; reopening walks back into the
// existing child scope rather than shadowing it.
type Table struct {
	global  *Scope
	current *Scope
}

// New returns a Table positioned at the (unnamed) global scope.
func New() *Table {
	g := newScope("", nil)
	return &Table{global: g, current: g}
}

// EnterScope descends into scopeName, reopening it if a child of that name
// already exists under the current scope, or creating it otherwise.
func (t *Table) EnterScope(scopeName string) {
	if existing := t.current.GetChildScope(scopeName); existing != nil {
		t.current = existing
		return
	}
	t.current = t.current.CreateChildScope(scopeName)
}

// LeaveScope returns to the current scope's parent. A no-op at the global
// scope.
func (t *Table) LeaveScope() {
	if t.current.Parent != nil {
		t.current = t.current.Parent
	}
}

// AddSymbol binds name in the current scope. Reports whether it was newly
// bound (false means it's a duplicate in this scope).
func (t *Table) AddSymbol(name string, kind Kind, node any) bool {
	sym := Symbol{
		Name:    name,
		Kind:    kind,
		Node:    node,
		InScope: t.current.FQN,
		FQN:     t.BuildFullyQualifiedName(name),
	}
	return t.current.AddSymbol(sym)
}

// Lookup resolves name by simple identifier, searching the current scope
// and then its ancestors.
func (t *Table) Lookup(name string) (Symbol, bool) {
	return t.current.Lookup(name)
}

// LookupScoped resolves a scoped name given as its ::-separated parts.
// isAbsolute means the name began with a leading "::" and must be resolved
// from the global scope rather than the current one. This mirrors the
// reference resolver exactly, including its asymmetric anchoring: a
// single-part relative name is resolved as an ordinary symbol lookup: a
// multi-part relative name instead walks up the scope chain looking for a
// child scope matching the first part before descending through the
// remaining parts.
func (t *Table) LookupScoped(parts []string, isAbsolute bool) (Symbol, bool) {
	if len(parts) == 0 {
		return Symbol{}, false
	}

	searchScope := t.current
	if isAbsolute {
		searchScope = t.global
	}

	if !isAbsolute && len(parts) == 1 {
		return searchScope.Lookup(parts[0])
	}

	if !isAbsolute {
		scope := t.current
		found := false
		for scope != nil {
			if child := scope.GetChildScope(parts[0]); child != nil {
				searchScope = child
				found = true
				break
			}
			if len(parts) == 1 {
				if sym, ok := scope.LookupLocal(parts[0]); ok {
					return sym, true
				}
			}
			scope = scope.Parent
		}
		if !found && len(parts) > 1 {
			return Symbol{}, false
		}
	}

	currentSearch := searchScope
	if isAbsolute {
		currentSearch = t.global
	}
	start := 1
	if isAbsolute {
		start = 0
	}
	for i := start; i < len(parts)-1; i++ {
		child := currentSearch.GetChildScope(parts[i])
		if child == nil {
			return Symbol{}, false
		}
		currentSearch = child
	}

	return currentSearch.LookupLocal(parts[len(parts)-1])
}

// LookupQualified resolves a "::"-separated qualified name string, e.g.
// "::ModuleA::StructB" or "ModuleA::StructB".
func (t *Table) LookupQualified(qualifiedName string) (Symbol, bool) {
	parts := parseQualifiedName(qualifiedName)
	isAbsolute := strings.HasPrefix(qualifiedName, "::")
	return t.LookupScoped(parts, isAbsolute)
}

// GetCurrentScopeName returns the current scope's fully qualified name.
func (t *Table) GetCurrentScopeName() string { return t.current.FQN }

// CurrentScope returns the current scope.
func (t *Table) CurrentScope() *Scope { return t.current }

// GlobalScope returns the root scope.
func (t *Table) GlobalScope() *Scope { return t.global }

// ExistsInCurrentScope reports whether name is already bound locally.
func (t *Table) ExistsInCurrentScope(name string) bool {
	_, ok := t.current.LookupLocal(name)
	return ok
}

// BuildFullyQualifiedName prefixes name with the current scope's FQN.
func (t *Table) BuildFullyQualifiedName(name string) string {
	if t.current.FQN == "" {
		return name
	}
	return t.current.FQN + "::" + name
}

func parseQualifiedName(name string) []string {
	var parts []string
	var current strings.Builder

	i := 0
	if strings.HasPrefix(name, "::") {
		i = 2
	}

	for i < len(name) {
		if i+1 < len(name) && name[i] == ':' && name[i+1] == ':' {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			i += 2
		} else {
			current.WriteByte(name[i])
			i++
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
