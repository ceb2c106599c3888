package domain

import "errors"

// Domain errors.
var (
	ErrMissingTranslation = errors.New("missing translation")
	ErrUnknownLocale      = errors.New("unknown locale")
	ErrFragmentRead       = errors.New("cannot read translation fragment")
	ErrFragmentParse      = errors.New("cannot parse translation fragment")
	ErrNoFragments        = errors.New("no translation fragments found")
	ErrLocaleParity       = errors.New("locales do not expose the same keys")
	ErrUserCreation       = errors.New("failed to create user")
	ErrMissingVersion     = errors.New("api version is required")
	ErrSchemaFetch        = errors.New("schema fetch failed")
	ErrSchemaTimeout      = errors.New("schema fetch timed out")
	ErrSchemaDecode       = errors.New("schema is not valid yaml")
)

// codes is searched in order; when a chain wraps several domain errors the
// first listed one wins.
var codes = []struct {
	err  error
	code string
}{
	{ErrUserCreation, "user_creation"},
	{ErrMissingTranslation, "missing_translation"},
	{ErrUnknownLocale, "unknown_locale"},
	{ErrFragmentRead, "fragment_read"},
	{ErrFragmentParse, "fragment_parse"},
	{ErrNoFragments, "no_fragments"},
	{ErrLocaleParity, "locale_parity"},
	{ErrMissingVersion, "missing_version"},
	{ErrSchemaTimeout, "schema_timeout"},
	{ErrSchemaFetch, "schema_fetch"},
	{ErrSchemaDecode, "schema_decode"},
}

// Code returns the stable code of the first domain error, in codes order,
// found in err's chain, or "" when err does not wrap a domain error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
