package entities

// Fragment is one decoded translation source file.
type Fragment struct {
	Path     string
	Locale   string
	Messages map[string]any
}

// BuildReport summarises one localization build.
type BuildReport struct {
	OutputPath string
	Fragments  int
	Locales    []string
	// Keys counts string leaves per locale.
	Keys map[string]int
	// Missing lists, per locale, the key-paths present in the default locale
	// but absent from that locale.
	Missing map[string][]string
}
