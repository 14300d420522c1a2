package content

import (
	"strings"
	"time"

	platformi18n "github.com/stoplaliga/stoplaliga.com/internal/platform/i18n"
	"golang.org/x/text/language"
)

// LocalizedStat is a Stat projected into one locale.
type LocalizedStat struct {
	Value string
	Label string
}

// LocalizedEvent is an Event projected into one locale.
type LocalizedEvent struct {
	Key         string
	Date        time.Time
	Title       string
	Description string
	Impact      string
	Why         string
	Stats       []LocalizedStat
}

// LocalizedCase is a Case projected into one locale.
type LocalizedCase struct {
	ID         string
	Visual     Visual
	Title      string
	Abstract   string
	Paragraphs []string
	Comment    string
}

// LocalizedSource is a Source projected into one locale. DateValid is false
// when the authored date does not parse.
type LocalizedSource struct {
	Publisher string
	Date      time.Time
	DateValid bool
	URL       string
	Title     string
}

// LocalizedTopic is a Topic projected into one locale.
type LocalizedTopic struct {
	Slug     string
	Title    string
	Subtitle string
	Entries  []LocalizedSource
}

// LocalizedStage is a Stage projected into one locale.
type LocalizedStage struct {
	ID    string
	Title string
}

// LocalizedIntro is the Intro projected into one locale.
type LocalizedIntro struct {
	Title    string
	Subtitle string
	Messages []string
	Stages   []LocalizedStage
}

// Localized is the whole library projected into one locale.
type Localized struct {
	Locale    language.Tag
	Events    []LocalizedEvent
	Cases     []LocalizedCase
	Topics    []LocalizedTopic
	Intro     LocalizedIntro
	UpdatedAt time.Time
}

// Localize projects the library into tag. Fields missing in tag fall back to
// the default locale.
func (l *Library) Localize(tag language.Tag) Localized {
	out := Localized{Locale: tag}
	if l == nil {
		return out
	}
	out.UpdatedAt = l.UpdatedAt

	out.Events = make([]LocalizedEvent, 0, len(l.Events))
	for _, event := range l.Events {
		localized := LocalizedEvent{
			Key:         event.Date.Format(time.DateOnly),
			Date:        event.Date,
			Title:       event.Title.In(tag),
			Description: event.Description.In(tag),
			Impact:      event.Impact.In(tag),
			Why:         event.Why.In(tag),
		}
		for _, stat := range event.Stats {
			localized.Stats = append(localized.Stats, LocalizedStat{Value: stat.Value, Label: stat.Label.In(tag)})
		}
		out.Events = append(out.Events, localized)
	}

	out.Cases = make([]LocalizedCase, 0, len(l.Cases))
	for _, item := range l.Cases {
		out.Cases = append(out.Cases, LocalizedCase{
			ID:         item.ID,
			Visual:     item.Visual,
			Title:      item.Title.In(tag),
			Abstract:   item.Abstract.In(tag),
			Paragraphs: Paragraphs(item.Content.In(tag)),
			Comment:    item.Comment.In(tag),
		})
	}

	out.Topics = make([]LocalizedTopic, 0, len(l.Topics))
	for _, topic := range l.Topics {
		localized := LocalizedTopic{
			Slug:     topic.Slug,
			Title:    topic.Title.In(tag),
			Subtitle: topic.Subtitle.In(tag),
		}
		for _, entry := range topic.Entries {
			date, err := platformi18n.ParseDate(strings.TrimSpace(entry.Date))
			localized.Entries = append(localized.Entries, LocalizedSource{
				Publisher: entry.Publisher,
				Date:      date,
				DateValid: err == nil,
				URL:       strings.TrimSpace(entry.URL),
				Title:     entry.Title.In(tag),
			})
		}
		out.Topics = append(out.Topics, localized)
	}

	out.Intro = LocalizedIntro{
		Title:    l.Intro.Title.In(tag),
		Subtitle: l.Intro.Subtitle.In(tag),
	}
	for _, message := range l.Intro.Messages {
		out.Intro.Messages = append(out.Intro.Messages, message.In(tag))
	}
	for _, stage := range l.Intro.Stages {
		out.Intro.Stages = append(out.Intro.Stages, LocalizedStage{ID: stage.ID, Title: stage.Title.In(tag)})
	}
	return out
}

// Paragraphs splits text on blank lines, dropping empty paragraphs.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			out = append(out, block)
		}
	}
	return out
}
