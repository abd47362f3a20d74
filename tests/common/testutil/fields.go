//go:build unit || e2e

package testutil

import "net/url"

// a helper function for dynamically modifying query params in tests; an empty value removes the key
func Field(key, value string) func(q url.Values) {
	return func(q url.Values) {
		if value == "" {
			q.Del(key)
		} else {
			q.Set(key, value)
		}
	}
}
