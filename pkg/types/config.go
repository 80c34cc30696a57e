package types

// MapperConfig holds settings for the tine mapping stage.
type MapperConfig struct {
	// TineCount is the number of tines on the target instrument (default 17).
	TineCount int `json:"tine_count" yaml:"tine_count"`

	// OctavePolicy selects the out-of-range fallback: "ignore" drops the
	// note, "shift_down" retries exactly one octave lower (default).
	OctavePolicy string `json:"octave_policy" yaml:"octave_policy"`

	// ReferenceTablePath optionally points at a YAML file with a custom
	// pitch table; empty means the built-in table.
	ReferenceTablePath string `json:"reference_table,omitempty" yaml:"reference_table,omitempty"`
}

// OutputConfig holds the artifact destinations.
type OutputConfig struct {
	// SVGPath is the vector tablature destination (default "kalimba_tab.svg").
	SVGPath string `json:"svg" yaml:"svg"`

	// PDFPath is the paginated document destination (default "kalimba_tab.pdf").
	PDFPath string `json:"pdf" yaml:"pdf"`
}

// CatalogConfig holds settings for the local render history.
type CatalogConfig struct {
	// Dir is the directory holding the history database (default ".").
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PipelineConfig groups all stage configurations for a render run.
type PipelineConfig struct {
	Mapper  MapperConfig  `json:"mapper" yaml:"mapper"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
