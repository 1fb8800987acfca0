package domain

// Dictionary maps a locale to its translation key/value pairs. It is built
// once at startup and never mutated afterwards.
type Dictionary map[Locale]map[string]string

// Lookup returns the non-empty entry for key in locale.
func (d Dictionary) Lookup(l Locale, key string) (string, bool) {
	v, ok := d[l][key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
