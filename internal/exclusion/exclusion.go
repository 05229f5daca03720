// Package exclusion decides whether a rule runs under a configuration.
package exclusion

import "slices"

// Effective returns the exclusion set: exclude itself or, for the mobile
// profile, its union with mobileDefaults. Duplicates are removed, the order
// of first appearance is kept.
func Effective(exclude []string, mobile bool, mobileDefaults []string) []string {
	res := make([]string, 0, len(exclude)+len(mobileDefaults))
	add := func(keys []string) {
		for _, k := range keys {
			if !slices.Contains(res, k) {
				res = append(res, k)
			}
		}
	}

	add(exclude)
	if mobile {
		add(mobileDefaults)
	}
	return res
}

// ShouldRun reports whether the rule with the given key is not excluded.
// Nothing is cached, the configuration may change between calls.
func ShouldRun(key string, exclude []string, mobile bool, mobileDefaults []string) bool {
	return !slices.Contains(Effective(exclude, mobile, mobileDefaults), key)
}
