package templates

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	webi18n "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/i18n"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func renderDocument(t *testing.T, component templ.Component, children templ.Component) *html.Node {
	t.Helper()
	ctx := context.Background()
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func byClass(tag string, class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag && strings.Contains(" "+attr(n, "class")+" ", " "+class+" ")
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func pageFor(tag language.Tag, path string) PageContext {
	return PageContext{Locale: tag, Loc: webi18n.Printer(tag), CurrentPath: path}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "StopLaLiga"},
		{in: "StopLaLiga", want: "StopLaLiga"},
		{in: "Sources", want: "Sources | StopLaLiga"},
		{in: "Sources | StopLaLiga", want: "Sources | StopLaLiga"},
		{in: "  Other practices  ", want: "Other practices | StopLaLiga"},
	}
	for _, tc := range tests {
		if got := ComposePageTitle(tc.in); got != tc.want {
			t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLayoutRendersLocalizedDocument(t *testing.T) {
	t.Parallel()

	page := pageFor(language.English, "/en/sources")
	page.UpdatedAt = time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC)
	doc := renderDocument(t, Layout("Sources", page), textComponent(`<p id="child">body</p>`))

	root := findAll(doc, byTag("html"))
	if len(root) != 1 || attr(root[0], "lang") != "en" {
		t.Fatalf("expected <html lang=\"en\">, got %+v", root)
	}
	if title := findAll(doc, byTag("title")); len(title) != 1 || textOf(title[0]) != "Sources | StopLaLiga" {
		t.Fatalf("unexpected title")
	}
	main := findAll(doc, byTag("main"))
	if len(main) != 1 || len(findAll(main[0], func(n *html.Node) bool { return attr(n, "id") == "child" })) != 1 {
		t.Fatal("expected children rendered inside <main>")
	}

	switcher := findAll(doc, byClass("nav", "language-switcher"))
	if len(switcher) != 1 {
		t.Fatalf("language switcher count = %d, want 1", len(switcher))
	}
	links := findAll(switcher[0], byTag("a"))
	if len(links) != 2 {
		t.Fatalf("switcher links = %d, want 2", len(links))
	}
	if attr(links[0], "href") != "/es/sources" || textOf(links[0]) != "ES" {
		t.Fatalf("first switcher link = %q %q", attr(links[0], "href"), textOf(links[0]))
	}
	if attr(links[1], "href") != "/en/sources" || attr(links[1], "aria-current") != "true" {
		t.Fatalf("expected active EN link, got href=%q aria-current=%q", attr(links[1], "href"), attr(links[1], "aria-current"))
	}

	current := findAll(doc, func(n *html.Node) bool { return n.Data == "a" && attr(n, "aria-current") == "page" })
	if len(current) != 1 || attr(current[0], "href") != "/en/sources" {
		t.Fatalf("expected sources nav link to be current")
	}

	updated := findAll(doc, byClass("p", "updated"))
	if len(updated) != 1 || textOf(updated[0]) != "Updated: July 6, 2025" {
		t.Fatalf("unexpected footer update line")
	}
}

func TestLayoutHidesUpdateLineWithoutDate(t *testing.T) {
	t.Parallel()

	doc := renderDocument(t, Layout("x", pageFor(language.Spanish, "/es")), nil)
	if got := findAll(doc, byClass("p", "updated")); len(got) != 0 {
		t.Fatalf("expected no update line, got %d", len(got))
	}
	if got := findAll(doc, byTag("footer")); len(got) != 1 {
		t.Fatalf("footer count = %d, want 1", len(got))
	}
}

func TestLanguageSwitcherOnHomePath(t *testing.T) {
	t.Parallel()

	options := LanguageOptions(pageFor(language.Spanish, "/es"))
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].URL != "/es" || !options[0].Active {
		t.Fatalf("es option = %+v", options[0])
	}
	if options[1].URL != "/en" || options[1].Active {
		t.Fatalf("en option = %+v", options[1])
	}
	if options[1].Label != "Cambiar a inglés" {
		t.Fatalf("expected localized switch label, got %q", options[1].Label)
	}
}

func TestTimelinePageRendersEmbeddedEvents(t *testing.T) {
	t.Parallel()

	library, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	localized := library.Localize(language.Spanish)
	page := pageFor(language.Spanish, "/es")
	doc := renderDocument(t, TimelinePage(page, TimelineView{Events: localized.Events, Cases: localized.Cases}), nil)

	events := findAll(doc, byClass("li", "event"))
	if len(events) != len(localized.Events) {
		t.Fatalf("events = %d, want %d", len(events), len(localized.Events))
	}
	first := findAll(events[0], byTag("time"))
	if len(first) != 1 || attr(first[0], "datetime") != "2024-12-18" || textOf(first[0]) != "18 de diciembre de 2024" {
		t.Fatalf("unexpected first event date")
	}
	if stats := findAll(doc, byClass("dl", "stats")); len(stats) == 0 {
		t.Fatal("expected at least one stats panel")
	}
	cta := findAll(doc, byClass("a", "cta"))
	if len(cta) != 1 || attr(cta[0], "href") != "/es/controversies" {
		t.Fatal("expected practices link to controversies")
	}
}

func TestTimelinePageEmpty(t *testing.T) {
	t.Parallel()

	doc := renderDocument(t, TimelinePage(pageFor(language.English, "/en"), TimelineView{}), nil)
	empty := findAll(doc, byClass("p", "empty"))
	if len(empty) != 1 || textOf(empty[0]) != "No events yet." {
		t.Fatal("expected empty timeline message")
	}
	if got := findAll(doc, byClass("section", "practices")); len(got) != 0 {
		t.Fatal("expected no practices teaser without cases")
	}
}

func TestControversiesPageRendersCases(t *testing.T) {
	t.Parallel()

	cases := []content.LocalizedCase{
		{ID: "spy-app", Visual: content.VisualMicrophone, Title: "App", Paragraphs: []string{"one", "two"}, Comment: "note"},
		{ID: "cameras", Visual: content.VisualEye, Title: "Cameras", Paragraphs: []string{"three"}},
	}
	doc := renderDocument(t, ControversiesPage(pageFor(language.English, "/en/controversies"), cases), nil)

	articles := findAll(doc, byClass("article", "case"))
	if len(articles) != 2 {
		t.Fatalf("cases = %d, want 2", len(articles))
	}
	if got := findAll(articles[0], byTag("path")); len(got) != 1 {
		t.Fatalf("microphone paths = %d, want 1", len(got))
	}
	if got := findAll(articles[1], byTag("path")); len(got) != 2 {
		t.Fatalf("eye paths = %d, want 2", len(got))
	}
	if got := findAll(articles[0], byTag("p")); len(got) != 3 {
		t.Fatalf("first case paragraphs = %d, want 3", len(got))
	}
	back := findAll(doc, byClass("a", "back"))
	if len(back) != 1 || attr(back[0], "href") != "/en" {
		t.Fatal("expected back link to the localized home")
	}
}

func TestSourcesPageFormatsDates(t *testing.T) {
	t.Parallel()

	topics := []content.LocalizedTopic{{
		Slug:  "privacy",
		Title: "Privacidad",
		Entries: []content.LocalizedSource{
			{Publisher: "AEPD", URL: "https://www.aepd.es/", Title: "Resolución", DateValid: true, Date: time.Date(2019, time.June, 11, 0, 0, 0, 0, time.UTC)},
			{Publisher: "Blog", URL: "https://example.org/", Title: "Post"},
		},
	}}
	doc := renderDocument(t, SourcesPage(pageFor(language.Spanish, "/es/sources"), topics), nil)

	items := findAll(doc, byTag("li"))
	if len(items) != 2 {
		t.Fatalf("entries = %d, want 2", len(items))
	}
	if got := textOf(items[0]); !strings.Contains(got, "Publicado el 11 de junio de 2019") {
		t.Fatalf("valid date entry = %q", got)
	}
	if got := textOf(items[1]); !strings.Contains(got, "Fecha no válida") {
		t.Fatalf("invalid date entry = %q", got)
	}
	link := findAll(items[0], byTag("a"))
	if len(link) != 1 || attr(link[0], "rel") != "noopener noreferrer" {
		t.Fatal("expected external link with rel=noopener noreferrer")
	}
}

func TestIntroPageRendersStages(t *testing.T) {
	t.Parallel()

	intro := content.LocalizedIntro{
		Title:    "Intro",
		Messages: []string{"a", "b"},
		Stages:   []content.LocalizedStage{{ID: "open-web", Title: "Open"}, {ID: "blackout", Title: "Dark"}},
	}
	doc := renderDocument(t, IntroPage(pageFor(language.English, "/en/animation-demo"), intro), nil)
	stages := findAll(doc, func(n *html.Node) bool { return attr(n, "data-stage") != "" })
	if len(stages) != 2 || attr(stages[1], "data-stage") != "blackout" {
		t.Fatalf("unexpected stages %d", len(stages))
	}
	narration := findAll(doc, byClass("div", "narration"))
	if len(narration) != 1 || len(findAll(narration[0], byTag("p"))) != 2 {
		t.Fatal("expected two narration paragraphs")
	}
}

func TestAppErrorState(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.English)
	tests := []struct {
		name    string
		status  int
		message string
		title   string
		body    string
	}{
		{name: "not found", status: http.StatusNotFound, title: "Page not found", body: "The page you are looking for does not exist or has moved."},
		{name: "server error", status: http.StatusInternalServerError, title: "Server error", body: "Something went wrong. Please try again later."},
		{name: "other status normalizes", status: http.StatusBadGateway, title: "Server error", body: "Something went wrong. Please try again later."},
		{name: "custom message", status: http.StatusServiceUnavailable, message: "<down>", title: "Server error", body: "<down>"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := renderDocument(t, AppErrorState(tc.status, language.English, loc, tc.message), nil)
			if h1 := findAll(doc, byTag("h1")); len(h1) != 1 || textOf(h1[0]) != tc.title {
				t.Fatalf("unexpected heading")
			}
			if p := findAll(doc, byTag("p")); len(p) != 1 || textOf(p[0]) != tc.body {
				t.Fatalf("unexpected message")
			}
			if got := AppErrorPageTitle(tc.status, loc); got != tc.title {
				t.Fatalf("AppErrorPageTitle() = %q, want %q", got, tc.title)
			}
		})
	}
}

func TestTextIsEscaped(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	cases := []content.LocalizedCase{{ID: "x", Title: `<script>alert(1)</script>`}}
	if err := ControversiesPage(pageFor(language.Spanish, "/es/controversies"), cases).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(b.String(), "<script>") {
		t.Fatalf("expected escaped title, got %q", b.String())
	}
}

func TestRenderStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var b strings.Builder
	err := Layout("x", pageFor(language.English, "/en")).Render(ctx, &b)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want %v", err, context.Canceled)
	}
	if b.Len() != 0 {
		t.Fatalf("expected no output, got %q", b.String())
	}
}

func TestLayoutPropagatesChildError(t *testing.T) {
	t.Parallel()

	want := errors.New("child failed")
	ctx := templ.WithChildren(context.Background(), templ.ComponentFunc(func(context.Context, io.Writer) error {
		return want
	}))
	var b strings.Builder
	if err := Layout("x", pageFor(language.English, "/en")).Render(ctx, &b); !errors.Is(err, want) {
		t.Fatalf("Render() error = %v, want %v", err, want)
	}
}
