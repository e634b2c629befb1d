package inventory

// Section identifies one of the two sub-tables inside an expanded device
// row.
type Section int

const (
	SectionInterfaces Section = iota
	SectionModules
)

// Expansion tracks which device rows are expanded and, per device, which
// of the interface/module sub-sections are open. The three sets are
// independent, except that toggling the row forces both sub-sections to
// follow it: operators expect "open device, see everything", then hide
// one noisy sub-table without losing the other.
type Expansion struct {
	rows       map[int64]struct{}
	interfaces map[int64]struct{}
	modules    map[int64]struct{}
}

// NewExpansion creates an empty expansion store.
func NewExpansion() *Expansion {
	return &Expansion{
		rows:       make(map[int64]struct{}),
		interfaces: make(map[int64]struct{}),
		modules:    make(map[int64]struct{}),
	}
}

// ToggleRow flips a device row's expansion. Expanding opens both
// sub-sections; collapsing closes both. A re-expanded row therefore
// always comes back fully open, regardless of its pre-collapse state.
func (e *Expansion) ToggleRow(id int64) {
	if _, ok := e.rows[id]; ok {
		delete(e.rows, id)
		delete(e.interfaces, id)
		delete(e.modules, id)
		return
	}
	e.rows[id] = struct{}{}
	e.interfaces[id] = struct{}{}
	e.modules[id] = struct{}{}
}

// RowExpanded reports whether a device row is expanded.
func (e *Expansion) RowExpanded(id int64) bool {
	_, ok := e.rows[id]
	return ok
}

// ToggleSection flips one sub-section independently. Only meaningful
// while the row is expanded; toggling a collapsed row's section is a
// no-op.
func (e *Expansion) ToggleSection(id int64, section Section) {
	if !e.RowExpanded(id) {
		return
	}
	set := e.sectionSet(section)
	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
}

// SectionExpanded reports whether a device's sub-section is open.
func (e *Expansion) SectionExpanded(id int64, section Section) bool {
	_, ok := e.sectionSet(section)[id]
	return ok
}

func (e *Expansion) sectionSet(section Section) map[int64]struct{} {
	if section == SectionInterfaces {
		return e.interfaces
	}
	return e.modules
}
