package resize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// filters maps configuration names to resample filters.
var filters = map[string]imaging.ResampleFilter{
	"lanczos":           imaging.Lanczos,
	"catmullrom":        imaging.CatmullRom,
	"mitchellnetravali": imaging.MitchellNetravali,
	"bspline":           imaging.BSpline,
	"linear":            imaging.Linear,
	"box":               imaging.Box,
	"nearest":           imaging.NearestNeighbor,
}

// FilterByName returns the resample filter registered under name.
func FilterByName(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[strings.ToLower(name)]
	if !ok {
		return imaging.ResampleFilter{}, fmt.Errorf("unknown resample filter %q (known: %s)", name, strings.Join(FilterNames(), ", "))
	}
	return f, nil
}

// FilterNames returns the known filter names in sorted order.
func FilterNames() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
