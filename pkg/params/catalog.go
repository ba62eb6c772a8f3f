// Package params describes the parameters modules expose and validates
// values before they are sent.
package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// Family is the group of parameters owned by one kind of module.
type Family struct {
	Name   string
	Range  proto.ParamID
	Module proto.ModuleType
}

// Families are the known parameter families.
var Families = []Family{
	{"osc", proto.RangeOscillator, proto.ModuleOscillator},
	{"filter", proto.RangeFilter, proto.ModuleFilter},
	{"env", proto.RangeEnvelope, proto.ModuleEnvelope},
	{"lfo", proto.RangeLFO, proto.ModuleLFO},
	{"mixer", proto.RangeMixer, proto.ModuleMixer},
	{"fx", proto.RangeEffects, proto.ModuleEffects},
}

// FamilyOf finds the family owning a parameter.
func FamilyOf(id proto.ParamID) (Family, bool) {
	for _, f := range Families {
		if f.Range == id.Range() {
			return f, true
		}
	}
	return Family{}, false
}

// FamilyByName finds a family by name or by module type name.
func FamilyByName(name string) (Family, bool) {
	name = strings.ToLower(name)
	for _, f := range Families {
		if f.Name == name || f.Module.String() == name {
			return f, true
		}
	}
	return Family{}, false
}

var (
	// ErrUnknownFamily indicates the range of a ParamID is not a known family.
	ErrUnknownFamily = errors.New("unknown parameter family")
	// ErrDuplicate indicates the ParamID or name is already registered.
	ErrDuplicate = errors.New("duplicated parameter")
)

// Catalog is a set of parameter definitions keyed by ParamID.
type Catalog struct {
	lock   sync.RWMutex
	byID   map[proto.ParamID]*Def
	byName map[string]*Def
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:   make(map[proto.ParamID]*Def),
		byName: make(map[string]*Def),
	}
}

// Register adds definitions. Either all of them are added or none.
func (c *Catalog) Register(defs ...Def) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	names := make(map[string]bool)
	ids := make(map[proto.ParamID]bool)
	for _, def := range defs {
		fam, ok := FamilyOf(def.ID)
		if !ok {
			return fmt.Errorf("%v: %w", def.ID, ErrUnknownFamily)
		}
		if !strings.HasPrefix(def.Name, fam.Name+".") {
			return fmt.Errorf("%v: name %q not in family %q", def.ID, def.Name, fam.Name)
		}
		if c.byID[def.ID] != nil || ids[def.ID] {
			return fmt.Errorf("%v: %w", def.ID, ErrDuplicate)
		}
		if c.byName[def.Name] != nil || names[def.Name] {
			return fmt.Errorf("%s: %w", def.Name, ErrDuplicate)
		}
		ids[def.ID], names[def.Name] = true, true
	}
	for n := range defs {
		def := defs[n]
		c.byID[def.ID] = &def
		c.byName[def.Name] = &def
	}
	return nil
}

// MustRegister registers and panics on error.
func (c *Catalog) MustRegister(defs ...Def) *Catalog {
	if err := c.Register(defs...); err != nil {
		panic(err)
	}
	return c
}

// Lookup finds a definition by ParamID.
func (c *Catalog) Lookup(id proto.ParamID) (*Def, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	def, ok := c.byID[id]
	return def, ok
}

// LookupName finds a definition by name (e.g. "osc.level").
func (c *Catalog) LookupName(name string) (*Def, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	def, ok := c.byName[strings.ToLower(name)]
	return def, ok
}

// Defs lists definitions sorted by ParamID. With a non-nil family,
// only the parameters of that family are returned.
func (c *Catalog) Defs(family *Family) []*Def {
	c.lock.RLock()
	defs := make([]*Def, 0, len(c.byID))
	for id, def := range c.byID {
		if family == nil || id.Range() == family.Range {
			defs = append(defs, def)
		}
	}
	c.lock.RUnlock()
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Name gets the registered name or the hex form of an unknown ParamID.
func (c *Catalog) Name(id proto.ParamID) string {
	if def, ok := c.Lookup(id); ok {
		return def.Name
	}
	return id.String()
}
