package model

// Filter selects which blocks run.
type Filter struct {
	// Names holds glob patterns matched against block names; empty matches all.
	Names []string `toml:"names" yaml:"names,omitempty"`
	// Tags requires at least one matching tag; empty matches all.
	Tags []string `toml:"tags" yaml:"tags,omitempty"`
	// ExcludeTags rejects blocks carrying any of these tags.
	ExcludeTags []string `toml:"exclude-tags" yaml:"exclude_tags,omitempty"`
}

// IsEmpty reports whether the filter lets every block through.
func (f Filter) IsEmpty() bool {
	return len(f.Names) == 0 && len(f.Tags) == 0 && len(f.ExcludeTags) == 0
}
