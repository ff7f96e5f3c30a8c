package dataprocessing

// Candidate header names checked in fixed priority order. The first name
// present in the table's header set wins; matching is exact, not fuzzy.
// The lists are deliberately not configurable to preserve the established
// output behavior for existing data files.
var (
	dateCandidates    = []string{"Date", "Timestamp", "time", "datetime"}
	numericCandidates = []string{"Value", "Amount", "Count", "Data"}
)

// detectColumn scans candidates in order against the header row and returns
// the index and name of the first match.
func detectColumn(headers []string, candidates []string) (int, string, bool) {
	for _, want := range candidates {
		for i, h := range headers {
			if h == want {
				return i, want, true
			}
		}
	}
	return -1, "", false
}

// DetectDateColumn finds the date column, if any.
func DetectDateColumn(headers []string) (int, string, bool) {
	return detectColumn(headers, dateCandidates)
}

// DetectNumericColumn finds the numeric column, if any.
func DetectNumericColumn(headers []string) (int, string, bool) {
	return detectColumn(headers, numericCandidates)
}
