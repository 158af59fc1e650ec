// Package symbols provides the address to name tables of the disassembler.
package symbols

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/set"
)

// ErrDuplicateName is returned when a name is already bound to another address.
var ErrDuplicateName = errors.New("duplicate symbol name")

// Symbol binds a name to an address.
type Symbol struct {
	Address uint16
	Name    string
}

// Table maps addresses to unique names. Every address is assigned a name at
// most once, assigned names are never overwritten.
type Table struct {
	items map[uint16]string
	names set.Set[string]
}

// New creates a new empty symbol table.
func New() *Table {
	return &Table{
		items: make(map[uint16]string),
		names: set.New[string](),
	}
}

// Add assigns the name to the address if the address has no name yet.
// It returns whether the name was assigned.
func (t *Table) Add(address uint16, name string) (bool, error) {
	if _, ok := t.items[address]; ok {
		return false, nil
	}
	if t.names.Contains(name) {
		return false, fmt.Errorf("%w: '%s' for address $%03X", ErrDuplicateName, name, address)
	}

	t.items[address] = name
	t.names.Add(name)
	return true, nil
}

// Get returns the name of the given address.
func (t *Table) Get(address uint16) (string, bool) {
	name, ok := t.items[address]
	return name, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.items)
}

// Sorted returns all symbols sorted by address.
func (t *Table) Sorted() []Symbol {
	symbols := make([]Symbol, 0, len(t.items))
	for address, name := range t.items {
		symbols = append(symbols, Symbol{Address: address, Name: name})
	}
	slices.SortFunc(symbols, func(a, b Symbol) int {
		return cmp.Compare(a.Address, b.Address)
	})
	return symbols
}

// View returns a read-only view of the table.
func (t *Table) View() View {
	return View{table: t}
}

// View is a read-only view of a Table. The zero value is an empty view.
type View struct {
	table *Table
}

// Get returns the name of the given address.
func (v View) Get(address uint16) (string, bool) {
	if v.table == nil {
		return "", false
	}
	return v.table.Get(address)
}

// Len returns the number of symbols in the table.
func (v View) Len() int {
	if v.table == nil {
		return 0
	}
	return v.table.Len()
}

// Sorted returns all symbols sorted by address.
func (v View) Sorted() []Symbol {
	if v.table == nil {
		return nil
	}
	return v.table.Sorted()
}
