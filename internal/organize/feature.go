// Package organize holds the organisational metadata objects that wrap
// named geological features: identity, equivalence checking, and XML
// emission for interchange. No mesh geometry lives here.
package organize

import (
	"encoding/xml"
	"maps"
	"sort"

	"github.com/google/uuid"
)

// FrontierFeature names an exploration frontier: an organisational
// object carrying a title, a stable UUID, and free-form extra metadata.
type FrontierFeature struct {
	UUID          uuid.UUID
	FeatureName   string
	ExtraMetadata map[string]string
}

// NewFrontierFeature mints a feature with a fresh UUID. extra may be
// nil; it is copied, not retained.
func NewFrontierFeature(name string, extra map[string]string) *FrontierFeature {
	f := &FrontierFeature{
		UUID:        uuid.New(),
		FeatureName: name,
	}
	if len(extra) > 0 {
		f.ExtraMetadata = maps.Clone(extra)
	}
	return f
}

// IsEquivalent reports whether this feature is essentially the same as
// the other. Matching UUIDs short-circuit to true; otherwise the names
// must match, and when checkExtraMetadata is set the metadata maps must
// match too.
func (f *FrontierFeature) IsEquivalent(other *FrontierFeature, checkExtraMetadata bool) bool {
	if f == nil || other == nil {
		return false
	}
	if f == other || f.UUID == other.UUID {
		return true
	}
	if checkExtraMetadata && !maps.Equal(f.ExtraMetadata, other.ExtraMetadata) {
		return false
	}
	return f.FeatureName == other.FeatureName
}

type xmlMetadataPair struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

type xmlFrontierFeature struct {
	XMLName       xml.Name          `xml:"FrontierFeature"`
	UUID          string            `xml:"uuid,attr"`
	Title         string            `xml:"Citation>Title"`
	ExtraMetadata []xmlMetadataPair `xml:"ExtraMetadata,omitempty"`
}

// XML renders the feature as an interchange node. Metadata pairs are
// emitted in sorted key order so output is deterministic.
func (f *FrontierFeature) XML() ([]byte, error) {
	node := xmlFrontierFeature{
		UUID:  f.UUID.String(),
		Title: f.FeatureName,
	}
	keys := make([]string, 0, len(f.ExtraMetadata))
	for k := range f.ExtraMetadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.ExtraMetadata = append(node.ExtraMetadata, xmlMetadataPair{Name: k, Value: f.ExtraMetadata[k]})
	}
	return xml.MarshalIndent(node, "", "  ")
}
