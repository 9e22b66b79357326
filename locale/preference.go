package locale

// PreferenceKey is the key a remembered locale selection is stored under.
const PreferenceKey = "quote_locale"

// PreferenceStore is the narrow key/value view of whatever persists a
// user's locale choice (a session, a cookie, a settings row).
type PreferenceStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// LoadPreference reads the remembered locale. A missing store, an absent
// key or a corrupted value all resolve to DefaultCode.
func LoadPreference(store PreferenceStore) Code {
	if store == nil {
		return DefaultCode
	}
	raw, ok := store.Get(PreferenceKey)
	if !ok {
		return DefaultCode
	}
	return GetQuoteLocale(raw)
}

// SavePreference remembers code. Unsupported codes are stored as DefaultCode
// so the next read never has to repair the value.
func SavePreference(store PreferenceStore, code string) error {
	if store == nil {
		return nil
	}
	if !IsValidLocaleCode(code) {
		code = string(DefaultCode)
	}
	return store.Set(PreferenceKey, code)
}
