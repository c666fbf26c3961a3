// Package scaffold holds the catalog of embedded test scaffolds. Payloads are
// compiled into the binary and treated as opaque data; the tool never parses
// or rewrites them.
package scaffold

import (
	_ "embed"
	"fmt"
	"unicode/utf8"
)

//go:embed assets/invite-co-investors.test.tsx
var inviteCoInvestorsPayload string

// Scaffold is a single embedded file the tool can emit: a fixed payload and
// the fixed project-relative destination it belongs at.
type Scaffold struct {
	Name        string
	Description string
	Destination string
	Payload     string
}

// CharCount returns the payload length in characters (Unicode code points).
func (s Scaffold) CharCount() int {
	return utf8.RuneCountInString(s.Payload)
}

// Bytes returns the payload as a byte slice for writing.
func (s Scaffold) Bytes() []byte {
	return []byte(s.Payload)
}

// catalog lists every scaffold in emit order. Order is fixed so that list,
// status and emit-all output stays stable across runs.
var catalog = []Scaffold{
	{
		Name:        "invite-co-investors",
		Description: "Test suite for the investor co-investment invitation page",
		Destination: "src/__tests__/investor/invite-co-investors.test.tsx",
		Payload:     inviteCoInvestorsPayload,
	},
}

// All returns every scaffold in catalog order.
func All() []Scaffold {
	result := make([]Scaffold, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the scaffold with the given name.
func Lookup(name string) (Scaffold, error) {
	for _, s := range catalog {
		if s.Name == name {
			return s, nil
		}
	}
	return Scaffold{}, fmt.Errorf("unknown scaffold: %s", name)
}

// Names returns every scaffold name in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}
