package model

// Theater represents a single screen with a fixed seating grid.  The grid
// dimensions drive seat-label generation (row letters × column numbers) and
// the capacity estimate used by the seeder; they are not enforced as a hard
// capacity anywhere else.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique theater name (e.g. "シアター1").
//  Rows – number of seating rows (labelled A, B, C, ...).
//  Cols – number of seats per row (numbered from 1).
type Theater struct {
	ID   uint64 `json:"id"`   // theaters.id
	Name string `json:"name"` // theaters.name
	Rows int    `json:"rows"` // theaters.seat_rows
	Cols int    `json:"cols"` // theaters.seat_cols
}

// Capacity returns the total number of seats in the theater.
func (t Theater) Capacity() int {
	return t.Rows * t.Cols
}
