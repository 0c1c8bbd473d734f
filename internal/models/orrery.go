package models

// NamedDistance is a single catalog entry. Distances share one implied unit across the catalog.
type NamedDistance struct {
	Name     string  `json:"name" yaml:"name"`
	Distance float64 `json:"distance" yaml:"distance"`
}

// CatalogRecord is an unparsed catalog line: its name and value exactly as written.
type CatalogRecord struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value" yaml:"value"`
}

// ScaledPlacement is a catalog body scaled to real-world miles and placed along the heading.
type ScaledPlacement struct {
	Name           string   `json:"name" yaml:"name"`
	ScaledDistance float64  `json:"scaled_distance" yaml:"scaled_distance"`
	OffsetDistance float64  `json:"offset_distance" yaml:"offset_distance"`
	Position       GeoPoint `json:"position" yaml:"position"`
	Clamped        bool     `json:"clamped" yaml:"clamped"`
}

// Report is the result of mapping one catalog onto one pair of locations.
type Report struct {
	Distance      float64           `json:"distance" yaml:"distance"`
	ScaleDistance float64           `json:"scale_distance" yaml:"scale_distance"`
	ScaleFactor   float64           `json:"scale_factor" yaml:"scale_factor"`
	Heading       float64           `json:"heading" yaml:"heading"`
	Origin        GeoPoint          `json:"origin" yaml:"origin"`
	Placements    []ScaledPlacement `json:"placements" yaml:"placements"`
}
