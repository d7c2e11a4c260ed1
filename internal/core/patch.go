// AngelaMos | 2026
// patch.go

package core

import "strings"

// MergeNullable applies a PATCH value to a nullable text column: nil keeps
// current, an empty string clears it, anything else replaces it.
func MergeNullable(current, patch *string) *string {
	if patch == nil {
		return current
	}
	if strings.TrimSpace(*patch) == "" {
		return nil
	}
	v := *patch
	return &v
}

// Merge returns *patch when set, otherwise current.
func Merge[T any](current T, patch *T) T {
	if patch == nil {
		return current
	}
	return *patch
}
