package validation

import "strconv"

// ParseID parses a positive integer id from a path segment. Ids are
// serial int4 columns, so anything above math.MaxInt32 is rejected.
func ParseID(raw string) (int, bool) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}
