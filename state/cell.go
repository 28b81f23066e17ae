package state

// Cell is a stable, named identifier for per-parse storage. It is
// declared once, at grammar build time, and accessed on a *State only
// through Get/Set — direct mutation of the backing map is forbidden.
//
// A Cell is a stable key resolved against a mapping that materializes
// its entries lazily, the same role a symbol-table binding plays for
// an interpreter scope.
type Cell struct {
	id   string
	init func() interface{}
}

// DeclareCell declares a cell identified by id, with an initializer
// used the first time the cell is accessed on a given state.
func DeclareCell(id string, init func() interface{}) Cell {
	if init == nil {
		init = func() interface{} { return nil }
	}
	return Cell{id: id, init: init}
}

// ID returns the cell's stable identifier.
func (c Cell) ID() string {
	return c.id
}

func (s *State) ensureCells() {
	if s.cells == nil {
		s.cells = make(map[string]interface{})
		s.cellIniters = make(map[string]func() interface{})
	}
}

// Get reads the current value of a cell, materializing it via the
// cell's initializer on first access.
func (s *State) Get(c Cell) interface{} {
	s.ensureCells()
	if v, ok := s.cells[c.id]; ok {
		return v
	}
	v := c.init()
	s.cells[c.id] = v
	return v
}

// Set mutates a cell through a journaled effect: the effect records
// the previous binding (value or absence) and restores it on undo.
// Set returns the Effect so callers (Learn, in package parser) can
// apply it via Apply and have the undo land in the journal at the
// right point relative to other effects.
func Set(c Cell, v interface{}) Effect {
	return func(s *State) Undo {
		s.ensureCells()
		prevVal, hadPrev := s.cells[c.id]
		s.cells[c.id] = v
		tracer().Debugf("cell %q set", c.id)
		return func(s *State) {
			if hadPrev {
				s.cells[c.id] = prevVal
			} else {
				delete(s.cells, c.id)
			}
			tracer().Debugf("cell %q restored", c.id)
		}
	}
}

// Has reports whether a cell currently holds a value on s (it was
// materialized, or set and not rolled back since), without triggering
// its initializer.
func (s *State) Has(c Cell) bool {
	if s.cells == nil {
		return false
	}
	_, ok := s.cells[c.id]
	return ok
}

// CellSnapshot returns a shallow copy of every materialized cell
// value, keyed by cell ID. It is used by tests asserting that journal
// reversibility restores cells to their pre-state values.
func (s *State) CellSnapshot() map[string]interface{} {
	snap := make(map[string]interface{}, len(s.cells))
	for k, v := range s.cells {
		snap[k] = v
	}
	return snap
}
