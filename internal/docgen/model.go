// Package docgen extracts the documentation of the declarations of a
// translation unit's main file and renders it as text, JSON or YAML.
package docgen

// Param is one \param block of a comment.
type Param struct {
	Name string `json:"name" yaml:"name"`
	// Direction is "in", "out" or "inout" when the comment spells it.
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	// Index is the position of the parameter, -1 when no parameter has
	// that name.
	Index int `json:"index" yaml:"index"`
}

// Section is a block command other than \brief, \param and \returns,
// e.g. \note or \deprecated.
type Section struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Symbol is one documented declaration.
type Symbol struct {
	Name       string    `json:"name" yaml:"name"`
	Kind       string    `json:"kind" yaml:"kind"`
	Type       string    `json:"type,omitempty" yaml:"type,omitempty"`
	Result     string    `json:"result,omitempty" yaml:"result,omitempty"`
	USR        string    `json:"usr,omitempty" yaml:"usr,omitempty"`
	Line       int       `json:"line" yaml:"line"`
	Col        int       `json:"col" yaml:"col"`
	Defined    bool      `json:"defined,omitempty" yaml:"defined,omitempty"`
	Internal   bool      `json:"internal,omitempty" yaml:"internal,omitempty"`
	Value      string    `json:"value,omitempty" yaml:"value,omitempty"`
	ParamNames []string  `json:"param_names,omitempty" yaml:"param_names,omitempty"`
	HasComment bool      `json:"has_comment" yaml:"has_comment"`
	Brief      string    `json:"brief,omitempty" yaml:"brief,omitempty"`
	Paragraphs []string  `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Params     []Param   `json:"params,omitempty" yaml:"params,omitempty"`
	Returns    string    `json:"returns,omitempty" yaml:"returns,omitempty"`
	Sections   []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	Members    []Symbol  `json:"members,omitempty" yaml:"members,omitempty"`
}

// FileDoc is the documentation of one main file.
type FileDoc struct {
	Path    string   `json:"path" yaml:"path"`
	Symbols []Symbol `json:"symbols" yaml:"symbols"`
	// Deps lists the non-system files the unit included.
	Deps []string `json:"deps,omitempty" yaml:"deps,omitempty"`
}

// Find returns the first symbol named name.
func (d *FileDoc) Find(name string) (*Symbol, bool) {
	for i := range d.Symbols {
		if d.Symbols[i].Name == name {
			return &d.Symbols[i], true
		}
	}
	return nil, false
}
