// Package content loads the structured page content of the site: timeline
// events, controversy cases, source listings and intro narration.
//
// Content is authored as YAML with one value per locale for every
// user-facing field. The embedded documents ship with the binary; a
// directory with the same file names can replace them at startup.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	TimelineFile      = "timeline.yaml"
	ControversiesFile = "controversies.yaml"
	SourcesFile       = "sources.yaml"
	IntroFile         = "intro.yaml"
)

//go:embed data/*.yaml
var embeddedFS embed.FS

// Text holds one value per locale, keyed by locale path segment.
type Text map[string]string

// In returns the value for tag, falling back to the default locale.
func (t Text) In(tag language.Tag) string {
	if value := strings.TrimSpace(t[platformi18n.LocaleString(tag)]); value != "" {
		return value
	}
	return strings.TrimSpace(t[baseLocale()])
}

func (t Text) hasBase() bool {
	return strings.TrimSpace(t[baseLocale()]) != ""
}

func baseLocale() string {
	return platformi18n.LocaleString(platformi18n.DefaultTag())
}

// Stat is one figure in an event's "why it matters" panel.
type Stat struct {
	Value string `yaml:"value"`
	Label Text   `yaml:"label"`
}

// Event is one dated timeline entry.
type Event struct {
	Date        time.Time `yaml:"-"`
	Title       Text      `yaml:"title"`
	Description Text      `yaml:"description"`
	Impact      Text      `yaml:"impact"`
	Why         Text      `yaml:"why"`
	Stats       []Stat    `yaml:"stats"`
}

// Visual names the illustration shown next to a controversy case.
type Visual string

const (
	VisualMicrophone Visual = "microphone"
	VisualEye        Visual = "eye"
)

// Case is one controversy.
type Case struct {
	ID       string `yaml:"id"`
	Visual   Visual `yaml:"visual"`
	Title    Text   `yaml:"title"`
	Abstract Text   `yaml:"abstract"`
	Content  Text   `yaml:"content"`
	Comment  Text   `yaml:"comment"`
}

// Source is one cited reference.
type Source struct {
	Publisher string `yaml:"publisher"`
	Date      string `yaml:"date"`
	URL       string `yaml:"url"`
	Title     Text   `yaml:"title"`
}

// Topic groups sources under a heading.
type Topic struct {
	Slug     string   `yaml:"slug"`
	Title    Text     `yaml:"title"`
	Subtitle Text     `yaml:"subtitle"`
	Entries  []Source `yaml:"entries"`
}

// Stage is one step of the intro animation.
type Stage struct {
	ID    string `yaml:"id"`
	Title Text   `yaml:"title"`
}

// Intro is the narration of the animation demo page.
type Intro struct {
	Title    Text    `yaml:"title"`
	Subtitle Text    `yaml:"subtitle"`
	Messages []Text  `yaml:"messages"`
	Stages   []Stage `yaml:"stages"`
}

// Library is the validated content of the whole site.
type Library struct {
	Events    []Event
	Cases     []Case
	Topics    []Topic
	Intro     Intro
	UpdatedAt time.Time
}

type timelineDocument struct {
	Events map[string]Event `yaml:"events"`
}

type controversiesDocument struct {
	Cases []Case `yaml:"cases"`
}

type sourcesDocument struct {
	Topics []Topic `yaml:"topics"`
}

// LoadEmbedded loads the content bundled with the binary.
func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(embeddedFS, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return Load(sub)
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("content directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load parses and validates the content documents found at the root of fsys.
func Load(fsys fs.FS) (*Library, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}

	var timeline timelineDocument
	if err := decodeFile(fsys, TimelineFile, &timeline); err != nil {
		return nil, err
	}
	var controversies controversiesDocument
	if err := decodeFile(fsys, ControversiesFile, &controversies); err != nil {
		return nil, err
	}
	var sources sourcesDocument
	if err := decodeFile(fsys, SourcesFile, &sources); err != nil {
		return nil, err
	}
	var intro Intro
	if err := decodeFile(fsys, IntroFile, &intro); err != nil {
		return nil, err
	}

	events, err := buildEvents(timeline.Events)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TimelineFile, err)
	}
	if err := validateCases(controversies.Cases); err != nil {
		return nil, fmt.Errorf("%s: %w", ControversiesFile, err)
	}
	if err := validateTopics(sources.Topics); err != nil {
		return nil, fmt.Errorf("%s: %w", SourcesFile, err)
	}
	if err := validateIntro(intro); err != nil {
		return nil, fmt.Errorf("%s: %w", IntroFile, err)
	}

	library := &Library{
		Events: events,
		Cases:  controversies.Cases,
		Topics: sources.Topics,
		Intro:  intro,
	}
	if len(events) > 0 {
		library.UpdatedAt = events[len(events)-1].Date
	}
	return library, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read content %s: %w", name, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("parse content %s: document is empty", name)
		}
		return fmt.Errorf("parse content %s: %w", name, err)
	}
	return nil
}

func buildEvents(raw map[string]Event) ([]Event, error) {
	if len(raw) == 0 {
		return nil, errors.New("at least one event is required")
	}
	events := make([]Event, 0, len(raw))
	for key, event := range raw {
		date, err := platformi18n.ParseDate(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("event %q: key must be an ISO date: %w", key, err)
		}
		for field, text := range map[string]Text{"title": event.Title, "description": event.Description, "impact": event.Impact} {
			if !text.hasBase() {
				return nil, fmt.Errorf("event %s: %s requires a %q value", key, field, baseLocale())
			}
		}
		if len(event.Why) > 0 && !event.Why.hasBase() {
			return nil, fmt.Errorf("event %s: why requires a %q value", key, baseLocale())
		}
		for i, stat := range event.Stats {
			if strings.TrimSpace(stat.Value) == "" {
				return nil, fmt.Errorf("event %s: stat %d value is required", key, i)
			}
			if !stat.Label.hasBase() {
				return nil, fmt.Errorf("event %s: stat %d label requires a %q value", key, i, baseLocale())
			}
		}
		event.Date = date
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func validateCases(cases []Case) error {
	seen := make(map[string]struct{}, len(cases))
	for i, item := range cases {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("case %d: id is required", i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("case %q is defined twice", id)
		}
		seen[id] = struct{}{}
		switch item.Visual {
		case VisualMicrophone, VisualEye:
		default:
			return fmt.Errorf("case %q: unknown visual %q", id, item.Visual)
		}
		for field, text := range map[string]Text{"title": item.Title, "abstract": item.Abstract, "content": item.Content} {
			if !text.hasBase() {
				return fmt.Errorf("case %q: %s requires a %q value", id, field, baseLocale())
			}
		}
		if len(item.Comment) > 0 && !item.Comment.hasBase() {
			return fmt.Errorf("case %q: comment requires a %q value", id, baseLocale())
		}
	}
	return nil
}

func validateTopics(topics []Topic) error {
	seen := make(map[string]struct{}, len(topics))
	for i, topic := range topics {
		slug := strings.TrimSpace(topic.Slug)
		if slug == "" {
			return fmt.Errorf("topic %d: slug is required", i)
		}
		if _, ok := seen[slug]; ok {
			return fmt.Errorf("topic %q is defined twice", slug)
		}
		seen[slug] = struct{}{}
		if !topic.Title.hasBase() {
			return fmt.Errorf("topic %q: title requires a %q value", slug, baseLocale())
		}
		for j, entry := range topic.Entries {
			if strings.TrimSpace(entry.Publisher) == "" {
				return fmt.Errorf("topic %q: entry %d publisher is required", slug, j)
			}
			if !entry.Title.hasBase() {
				return fmt.Errorf("topic %q: entry %d title requires a %q value", slug, j, baseLocale())
			}
			if err := validateURL(entry.URL); err != nil {
				return fmt.Errorf("topic %q: entry %d: %w", slug, j, err)
			}
		}
	}
	return nil
}

func validateIntro(intro Intro) error {
	if !intro.Title.hasBase() {
		return fmt.Errorf("title requires a %q value", baseLocale())
	}
	for i, message := range intro.Messages {
		if !message.hasBase() {
			return fmt.Errorf("message %d requires a %q value", i, baseLocale())
		}
	}
	for i, stage := range intro.Stages {
		if strings.TrimSpace(stage.ID) == "" {
			return fmt.Errorf("stage %d: id is required", i)
		}
		if !stage.Title.hasBase() {
			return fmt.Errorf("stage %q: title requires a %q value", stage.ID, baseLocale())
		}
	}
	return nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("url %q must be an absolute http(s) url", raw)
	}
	return nil
}
