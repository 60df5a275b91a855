package ftdf

type Port struct {
	PrimaryIdentifier string            `groups:"basic" bson:",omitempty"`
	OtherIdentifiers  map[string]string `groups:"detailed" json:",omitempty" bson:",omitempty"`

	PrimaryName string            `groups:"basic" bson:",omitempty"`
	OtherNames  map[string]string `groups:"detailed" json:",omitempty" bson:",omitempty"`

	DataSource *DataSourceReference `groups:"internal" bson:",omitempty"`

	// TerminalRefs is set on group ports - one logical name covering
	// several physical terminals served interchangeably. Order is the
	// stable preference order: the primary terminal comes first and wins
	// sorting ties between otherwise equal itineraries.
	TerminalRefs []string `groups:"basic" json:",omitempty" bson:",omitempty"`

	Location *Location `groups:"detailed" json:",omitempty" bson:",omitempty"`
}

// IsGroup reports whether the port is a logical alias for several terminals.
func (p *Port) IsGroup() bool {
	return len(p.TerminalRefs) > 0
}

// ResolvedRefs expands the port into the concrete terminal identifiers used
// for timetable matching, preserving preference order. A plain port resolves
// to itself.
func (p *Port) ResolvedRefs() []string {
	if p.IsGroup() {
		return p.TerminalRefs
	}

	return []string{p.PrimaryIdentifier}
}

// ResolvePortRefs expands a port code against an index of known ports.
// Unknown codes pass through unchanged - the timetable simply won't match
// them and the search returns empty.
func ResolvePortRefs(code string, ports map[string]*Port) []string {
	if port, ok := ports[code]; ok {
		return port.ResolvedRefs()
	}

	return []string{code}
}
