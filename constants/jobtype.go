package constants

import (
	"strings"
)

type JobType string

const (
	Windows         JobType = "Windows"
	Gutters         JobType = "Gutters"
	Fascias         JobType = "Fascias"
	PressureWashing JobType = "Pressure Washing"
	Conservatory    JobType = "Conservatory"
	OtherWork       JobType = "Other"
)

var allJobTypes = []JobType{
	Windows,
	Gutters,
	Fascias,
	PressureWashing,
	Conservatory,
	OtherWork,
}

// DefaultService is applied when an imported row carries no service column.
const DefaultService = "Window Cleaning"

func JobTypesAsStringSlice() []string {
	result := make([]string, len(allJobTypes))
	for i, jt := range allJobTypes {
		result[i] = string(jt)
	}
	return result
}

// CanonicalizeJobType maps free-text service descriptions onto the fixed job
// type set. Unrecognized input falls through to OtherWork with ok=false.
func CanonicalizeJobType(input string) (JobType, bool) {
	if input == "" {
		return OtherWork, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]JobType{
		"window cleaning":  Windows,
		"windows only":     Windows,
		"gutter clearing":  Gutters,
		"gutter cleaning":  Gutters,
		"soffits":          Fascias,
		"fascias & gutter": Fascias,
		"jet wash":         PressureWashing,
		"jet washing":      PressureWashing,
		"power washing":    PressureWashing,
		"driveway":         PressureWashing,
		"conservatory roof": Conservatory,
	}

	if jt, ok := synonyms[normalized]; ok {
		return jt, true
	}

	for _, jt := range allJobTypes {
		if normalized == strings.ToLower(string(jt)) {
			return jt, true
		}
	}

	return OtherWork, false
}
