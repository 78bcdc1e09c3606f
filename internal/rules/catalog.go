package rules

import (
	_ "embed"
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed formats.cue
var formatsCUE string

// Format fixes one set of playing conditions.
type Format struct {
	Name string `json:"name"`
	// Overs allocated per innings.
	Overs int `json:"overs"`
	// OversPerBowler caps a single bowler's allocation; 0 means no cap.
	OversPerBowler int `json:"oversPerBowler"`
	// SecondsPerOver is the expected over-rate pace baseline.
	SecondsPerOver int `json:"secondsPerOver"`
	// FlexibleSquad lifts the 10-wicket cap for non-11-a-side games.
	FlexibleSquad bool `json:"flexibleSquad"`
	// Days the match spans (multi-day formats).
	Days int `json:"days"`
}

// LoadCatalog compiles the embedded CUE format catalog and returns the
// formats keyed by name. The CUE schema validates constraints (positive
// overs, non-negative caps) at compile time, so a malformed catalog fails
// loudly at startup rather than mid-match.
func LoadCatalog() (map[string]Format, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(formatsCUE)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile format catalog: %w", err)
	}

	formatsVal := v.LookupPath(cue.ParsePath("formats"))
	if err := formatsVal.Err(); err != nil {
		return nil, fmt.Errorf("format catalog missing formats: %w", err)
	}
	if err := formatsVal.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate format catalog: %w", err)
	}

	out := make(map[string]Format)
	iter, err := formatsVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterate format catalog: %w", err)
	}
	for iter.Next() {
		var f Format
		if err := iter.Value().Decode(&f); err != nil {
			return nil, fmt.Errorf("decode format %q: %w", iter.Selector().Unquoted(), err)
		}
		out[f.Name] = f
	}
	return out, nil
}

// Lookup returns the named format from the catalog.
func Lookup(name string) (Format, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return Format{}, err
	}
	f, ok := catalog[name]
	if !ok {
		names := make([]string, 0, len(catalog))
		for n := range catalog {
			names = append(names, n)
		}
		sort.Strings(names)
		return Format{}, fmt.Errorf("unknown format %q (known: %v)", name, names)
	}
	return f, nil
}
