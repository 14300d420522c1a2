package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedTagsDefaultFirst(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("len(SupportedTags()) = %d, want 2", len(tags))
	}
	if tags[0] != DefaultTag() {
		t.Fatalf("first supported tag = %v, want default %v", tags[0], DefaultTag())
	}
	if LocaleString(tags[0]) != "es" || LocaleString(tags[1]) != "en" {
		t.Fatalf("supported = %v, want [es en]", tags)
	}

	tags[0] = language.French
	if SupportedTags()[0] != language.Spanish {
		t.Fatal("SupportedTags must return a copy")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{value: "es", want: language.Spanish, wantOK: true},
		{value: "en", want: language.English, wantOK: true},
		{value: "en-GB", want: language.English, wantOK: true},
		{value: "es-MX", want: language.Spanish, wantOK: true},
		{value: " en ", want: language.English, wantOK: true},
		{value: "", want: language.Und, wantOK: false},
		{value: "not a tag!", want: language.Und, wantOK: false},
		{value: "ja", want: language.Und, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseTag(%q) = %v, %v; want %v, %v", tc.value, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "empty", header: "", want: language.Spanish},
		{name: "english", header: "en-US,en;q=0.9", want: language.English},
		{name: "spanish region", header: "es-AR", want: language.Spanish},
		{name: "quality ordering", header: "en;q=0.5, es;q=0.9", want: language.Spanish},
		{name: "quality ordering english", header: "es;q=0.2, en;q=0.8", want: language.English},
		{name: "unsupported then supported", header: "ja, en;q=0.5", want: language.English},
		{name: "unsupported only", header: "ja, zh;q=0.8", want: language.Spanish},
		{name: "q zero dropped", header: "en;q=0", want: language.Spanish},
		{name: "malformed", header: "en;q=abc;;;", want: language.Spanish},
		{name: "equal weights keep header order", header: "en;q=0.5,es;q=0.5", want: language.English},
		{name: "equal weights keep header order spanish", header: "es, en", want: language.Spanish},
		{name: "malformed entry skipped", header: "en-US, !!bad, es", want: language.English},
		{name: "malformed first entry skipped", header: "!!bad, en;q=0.3", want: language.English},
		{name: "trailing comma", header: "en,", want: language.English},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Negotiate(tc.header); got != tc.want {
				t.Fatalf("Negotiate(%q) = %v, want %v", tc.header, got, tc.want)
			}
		})
	}
}

func TestMatchTagsEmptyReturnsDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
}

func TestLocaleFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		want   language.Tag
		wantOK bool
	}{
		{path: "/es", want: language.Spanish, wantOK: true},
		{path: "/en", want: language.English, wantOK: true},
		{path: "/es/", want: language.Spanish, wantOK: true},
		{path: "/en/sources", want: language.English, wantOK: true},
		{path: "/", wantOK: false},
		{path: "/ES", wantOK: false},
		{path: "/esp", wantOK: false},
		{path: "/english", wantOK: false},
		{path: "/sources/en", wantOK: false},
		{path: "", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := LocaleFromPath(tc.path)
		if ok != tc.wantOK {
			t.Fatalf("LocaleFromPath(%q) ok = %v, want %v", tc.path, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("LocaleFromPath(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsSupportedLocale(t *testing.T) {
	t.Parallel()

	if !IsSupportedLocale("es") || !IsSupportedLocale("en") {
		t.Fatal("expected es and en to be supported")
	}
	if IsSupportedLocale("EN") || IsSupportedLocale("fr") || IsSupportedLocale("") {
		t.Fatal("unexpected supported locale")
	}
}

func TestLanguageCookieRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.English, true)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
	if cookies[0].Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookies[0].Path)
	}
	if !cookies[0].Secure || !cookies[0].HttpOnly {
		t.Fatalf("cookie secure = %v httponly = %v, want both", cookies[0].Secure, cookies[0].HttpOnly)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	tag, ok := CookieTag(req)
	if !ok || tag != language.English {
		t.Fatalf("CookieTag = %v, %v; want en, true", tag, ok)
	}
}

func TestCookieTagRejectsUnsupported(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "ja"})
	if _, ok := CookieTag(req); ok {
		t.Fatal("expected unsupported cookie to be ignored")
	}
	if _, ok := CookieTag(nil); ok {
		t.Fatal("expected nil request to yield no tag")
	}
	SetLanguageCookie(nil, language.English, false)
}
