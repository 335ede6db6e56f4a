package mapper

// MapSlice applies mapFunc to each element. A nil input yields an empty,
// non-nil slice so JSON lists render as [].
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}
