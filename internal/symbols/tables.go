package symbols

// Tables bundles the symbol tables of a single disassembly run.
// They are written by the analysis passes only.
type Tables struct {
	ROM *Table // ROM address labels
	RAM *Table // RAM variable names
}

// NewTables creates a new set of empty tables.
func NewTables() Tables {
	return Tables{
		ROM: New(),
		RAM: New(),
	}
}

// Frozen returns read-only views of the tables.
func (t Tables) Frozen() Frozen {
	return Frozen{
		ROM: t.ROM.View(),
		RAM: t.RAM.View(),
	}
}

// Frozen contains read-only views of the symbol tables, used to render the listing.
type Frozen struct {
	ROM View
	RAM View
}
