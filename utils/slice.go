package utils

// UniqueStrings removes duplicate values while preserving first-seen order.
// Used to normalize the unlocked-feature set on load.
func UniqueStrings(slice []string) []string {
	keys := make(map[string]bool)
	list := []string{}
	for _, entry := range slice {
		if !keys[entry] {
			keys[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
