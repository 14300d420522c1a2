// Package i18n defines the supported site locales and how a request's
// language preferences are matched against them.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{language.Spanish, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported locales in priority order. The first
// entry is the default locale.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the locale used when nothing else matches.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// LocaleString returns the path segment for a locale ("es", "en").
func LocaleString(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsSupportedLocale reports whether segment is exactly one of the supported
// locale path segments.
func IsSupportedLocale(segment string) bool {
	for _, tag := range supportedTags {
		if LocaleString(tag) == segment {
			return true
		}
	}
	return false
}

// ParseTag parses value and maps it to a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[index], true
}

// MatchTags returns the best supported locale for tags, which must already be
// ordered by preference.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// Negotiate picks a supported locale from an Accept-Language header value.
// Entries are parsed one by one so a malformed entry only drops itself;
// entries with q=0 are ignored. Equal weights keep header order. Empty or
// fully unusable headers yield the default.
func Negotiate(acceptLanguage string) language.Tag {
	type weighted struct {
		tag language.Tag
		q   float32
	}
	var entries []weighted
	for _, entry := range strings.Split(acceptLanguage, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		tags, q, err := language.ParseAcceptLanguage(entry)
		if err != nil || len(tags) == 0 {
			continue
		}
		entries = append(entries, weighted{tag: tags[0], q: q[0]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].q > entries[j].q })
	tags := make([]language.Tag, 0, len(entries))
	for _, entry := range entries {
		tags = append(tags, entry.tag)
	}
	return MatchTags(tags)
}

// LocaleFromPath reports the locale carried by the first path segment. The
// path must be exactly "/<locale>" or start with "/<locale>/"; the comparison
// is case-sensitive.
func LocaleFromPath(path string) (language.Tag, bool) {
	for _, tag := range supportedTags {
		prefix := "/" + LocaleString(tag)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return tag, true
		}
	}
	return language.Und, false
}
