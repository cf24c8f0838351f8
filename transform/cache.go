package transform

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/fndecor/syntax"
)

// ErrAlreadyCached is returned when a file is cached twice in one session
var ErrAlreadyCached = errors.New("file already cached")

// Unit is the outcome of transforming one root file
type Unit struct {
	FileName string
	// Original is the file as loaded; File is the rewritten file, identical to Original when
	// no declaration was rewritten.
	Original     *syntax.SourceFile
	File         *syntax.SourceFile
	OriginalHash uint64
	Hash         uint64
	Declarations int
	Warnings     []string
}

// Changed reports whether any declaration was rewritten
func (u *Unit) Changed() bool {
	return u.Declarations > 0
}

// Cache holds the units of one session. Each file is written at most once and then read
// any number of times; a session is used by one goroutine at a time.
type Cache struct {
	units map[string]*Unit
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{units: map[string]*Unit{}}
}

// Put stores unit under its file name
func (c *Cache) Put(unit *Unit) error {
	if _, ok := c.units[unit.FileName]; ok {
		return fmt.Errorf("%w: %v", ErrAlreadyCached, unit.FileName)
	}
	c.units[unit.FileName] = unit
	return nil
}

// Get looks a unit up by exact file name
func (c *Cache) Get(fileName string) (*Unit, bool) {
	unit, ok := c.units[fileName]
	return unit, ok
}

// Units returns every unit ordered by file name
func (c *Cache) Units() []*Unit {
	result := make([]*Unit, 0, len(c.units))
	for _, unit := range c.units {
		result = append(result, unit)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FileName < result[j].FileName
	})
	return result
}

func (c *Cache) Len() int {
	return len(c.units)
}
