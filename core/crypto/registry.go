package crypto

import "fmt"

// family is a named set of swappable methods with a designated default.
// One family exists per capability (hash, cipher).
type family[M any] struct {
	name        string
	defaultName string
	methods     map[string]M
}

// selectMethod resolves a configured method name. An empty name returns
// the family default silently. An unrecognized name returns the family
// default with exactly one warning; it never fails, so a typo in
// configuration degrades to the default instead of stopping the process.
func (f family[M]) selectMethod(name string) (M, []string) {
	if name == "" {
		return f.methods[f.defaultName], nil
	}
	if m, ok := f.methods[name]; ok {
		return m, nil
	}
	return f.methods[f.defaultName], []string{
		fmt.Sprintf("unrecognized %s method %q, falling back to %s", f.name, name, f.defaultName),
	}
}

// HashMethodNames returns the recognized method names of the hash family.
func HashMethodNames() []string {
	return methodNames(hashFamily)
}

// CipherMethodNames returns the recognized method names of the cipher family.
func CipherMethodNames() []string {
	return methodNames(cipherFamily)
}

func methodNames[M any](f family[M]) []string {
	names := make([]string, 0, len(f.methods))
	for name := range f.methods {
		names = append(names, name)
	}
	return names
}
