package domain

import (
	"fmt"
	"strings"
)

// ElementID identifies an element within a module, replacing the framework's
// opaque numeric identifiers with an explicit module/element pair.
type ElementID struct {
	Module  string
	Element string
}

// NewElementID builds an identifier from its parts.
func NewElementID(module, element string) ElementID {
	return ElementID{Module: module, Element: element}
}

// ElementIDNone is the zero identity, used where the topology marks a
// collaborator as absent.
var ElementIDNone = ElementID{}

// IsNone reports whether the identity is the absent marker.
func (id ElementID) IsNone() bool {
	return id.Module == "" && id.Element == ""
}

// SameModule reports whether id belongs to the named module.
func (id ElementID) SameModule(module string) bool {
	return id.Module == module
}

func (id ElementID) String() string {
	if id.IsNone() {
		return "<none>"
	}
	return id.Module + "/" + id.Element
}

// ParseElementID parses the "module/element" form used in topology files.
func ParseElementID(s string) (ElementID, error) {
	module, element, ok := strings.Cut(s, "/")
	if !ok || module == "" || element == "" {
		return ElementIDNone, fmt.Errorf("malformed element id %q (want module/element)", s)
	}
	return ElementID{Module: module, Element: element}, nil
}
