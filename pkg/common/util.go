package common

import (
	"os"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}
func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range items {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

// FirstNonEmpty returns the first candidate that is not the empty string.
func FirstNonEmpty(candidates ...string) string {
	for i := range candidates {
		if candidates[i] != "" {
			return candidates[i]
		}
	}
	return ""
}
