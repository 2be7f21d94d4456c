package localization

// Language is a short language code ("en", "es", ...). Bundles are data
// driven; the code itself carries no validation.
type Language string

// DefaultLanguage is the fallback when no language is configured.
const DefaultLanguage Language = "en"
