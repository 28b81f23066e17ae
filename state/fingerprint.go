package state

import "github.com/cnf/structhash"

// fingerprint is the shape hashed to compare two states for
// inertness and reversibility properties without writing a bespoke
// deep-equality walk for every caller.
type fingerprint struct {
	Pos   int
	Stack []interface{}
	Cells map[string]interface{}
}

// Fingerprint computes a stable hash of the observable parts of a
// state: cursor, stack contents and materialized cells. Two
// fingerprints taken before and after a rolled-back parser attempt
// should be identical.
func Fingerprint(s *State) (string, error) {
	fp := fingerprint{
		Pos:   s.Pos,
		Stack: append([]interface{}(nil), s.stack.Values()...),
		Cells: s.CellSnapshot(),
	}
	return structhash.Hash(fp, 1)
}
