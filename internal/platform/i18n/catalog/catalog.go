// Package catalog loads the site's UI message catalogs and registers them
// with golang.org/x/text/message.
//
// Catalog files live at locales/<locale>/<namespace>.yaml. Message values are
// printf formats, so a literal percent sign is written as %%.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "es"
)

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// LocaleCatalog stores all messages for one locale, grouped by namespace.
type LocaleCatalog struct {
	Locale     string
	Namespaces map[string]map[string]string
	Messages   map[string]string
}

// Bundle contains all locale catalogs loaded from disk.
type Bundle struct {
	locales map[string]*LocaleCatalog
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads catalog files from the provided filesystem.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]*LocaleCatalog{}}

	for _, catalogPath := range paths {
		data, err := fs.ReadFile(catalogFS, catalogPath)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", catalogPath, err)
		}
		parsed, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", catalogPath, err)
		}
		if err := bundle.addFile(catalogPath, parsed); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	return bundle, nil
}

func (b *Bundle) addFile(filePath string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(filePath))
	namespaceFromPath := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", filePath)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", filePath, locale, localeFromPath)
	}

	namespace := strings.TrimSpace(file.Namespace)
	if namespace == "" {
		return fmt.Errorf("catalog %s: namespace is required", filePath)
	}
	if namespace != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", filePath, namespace, namespaceFromPath)
	}

	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", filePath)
	}

	localeCatalog, ok := b.locales[locale]
	if !ok {
		localeCatalog = &LocaleCatalog{
			Locale:     locale,
			Namespaces: map[string]map[string]string{},
			Messages:   map[string]string{},
		}
		b.locales[locale] = localeCatalog
	}
	if _, exists := localeCatalog.Namespaces[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", filePath, namespace, locale)
	}

	namespaceMessages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", filePath)
		}
		if strings.HasPrefix(trimmedKey, "core.") && namespace != "core" {
			return fmt.Errorf("catalog %s: key %q must be defined in core namespace", filePath, trimmedKey)
		}
		if _, exists := localeCatalog.Messages[trimmedKey]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", filePath, trimmedKey, locale)
		}

		localeCatalog.Messages[trimmedKey] = value
		namespaceMessages[trimmedKey] = value
	}

	localeCatalog.Namespaces[namespace] = namespaceMessages
	return nil
}

// Register registers all catalog messages with x/text/message.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	locales := b.Locales()
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "" && base.String() != "und" {
			baseTag, err := language.Parse(base.String())
			if err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		messages := b.LocaleMessages(locale)
		if locale != BaseLocale {
			for key, value := range b.LocaleMessages(BaseLocale) {
				if _, exists := messages[key]; !exists {
					messages[key] = value
				}
			}
		}
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, registerTag := range tags {
				message.SetString(registerTag, key, messages[key])
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// LocaleMessages returns an exact locale message map copy.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	if b == nil {
		return map[string]string{}
	}
	catalog, ok := b.locales[strings.TrimSpace(locale)]
	if !ok || catalog == nil {
		return map[string]string{}
	}
	return copyMap(catalog.Messages)
}

// Printer returns a printer for tag. Tags whose language has no catalog
// print in the base locale.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	base, _ := tag.Base()
	if !b.HasLocale(base.String()) {
		tag = language.Make(BaseLocale)
	}
	return message.NewPrinter(tag)
}

// MissingKeys returns the sorted keys defined in the base locale but absent
// from locale.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	base, ok := b.locales[BaseLocale]
	if !ok || base == nil {
		return nil
	}
	target := b.locales[strings.TrimSpace(locale)]
	var missing []string
	for key := range base.Messages {
		if target != nil {
			if _, exists := target.Messages[key]; exists {
				continue
			}
		}
		missing = append(missing, key)
	}
	sort.Strings(missing)
	return missing
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	var out catalogFile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return catalogFile{}, err
	}
	if strings.TrimSpace(out.Locale) == "" {
		return catalogFile{}, fmt.Errorf("missing locale")
	}
	if strings.TrimSpace(out.Namespace) == "" {
		return catalogFile{}, fmt.Errorf("missing namespace")
	}
	if len(out.Messages) == 0 {
		return catalogFile{}, fmt.Errorf("missing messages")
	}
	return out, nil
}
