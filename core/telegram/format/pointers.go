// Package format holds small presentation helpers shared by handlers.
package format

// DerefString safely dereferences a *string and returns a default value if nil.
func DerefString(s *string, defaultVal string) string {
	if s != nil {
		return *s
	}
	return defaultVal
}
