package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"

	"hashblog/app/models"
)

// DefaultLocale matches the display convention of the demo content.
var DefaultLocale = language.AmericanEnglish

// dateTranslators are the CLDR locales offered for date display. The first
// entry is the fallback for unsupported tags.
var dateTranslators = []func() locales.Translator{
	en_US.New, en.New, en_GB.New,
	de.New, fr.New, es.New, it.New, nl.New, pt.New, pt_BR.New,
	sv.New, da.New, nb.New, fi.New,
	pl.New, cs.New, ru.New, uk.New, tr.New,
	ja.New, zh.New, ko.New,
}

type dateLocale struct {
	tag    language.Tag
	layout string
}

var dateLocales, dateMatcher = func() ([]dateLocale, language.Matcher) {
	out := make([]dateLocale, len(dateTranslators))
	tags := make([]language.Tag, len(dateTranslators))
	for i, newTranslator := range dateTranslators {
		translator := newTranslator()
		tag := language.MustParse(strings.ReplaceAll(translator.Locale(), "_", "-"))
		out[i] = dateLocale{tag: tag, layout: shortDateLayout(translator)}
		tags[i] = tag
	}
	return out, language.NewMatcher(tags)
}()

// shortDateLayout turns a locale's CLDR short date into a time layout by
// formatting the reference time with it. Two-digit years are widened so
// every locale shows the full year.
func shortDateLayout(translator locales.Translator) string {
	layout := translator.FmtDateShort(time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(layout, "2006") {
		layout = strings.Replace(layout, "06", "2006", 1)
	}
	return layout
}

// ParseLocale parses a BCP 47 tag such as "en-US" or "de".
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// DateFormatter renders calendar dates in one locale's short form.
type DateFormatter struct {
	layout string
}

// NewDateFormatter picks the closest supported locale for tag. Unsupported
// locales get the US layout.
func NewDateFormatter(tag language.Tag) DateFormatter {
	_, idx, _ := dateMatcher.Match(tag)
	return DateFormatter{layout: dateLocales[idx].layout}
}

// Layout returns the time layout the formatter uses.
func (f DateFormatter) Layout() string {
	return f.layout
}

// Format displays raw in the formatter's layout, or returns raw unchanged if
// it is not a date.
func (f DateFormatter) Format(raw string) string {
	t, ok := models.ParseDate(raw)
	if !ok {
		return raw
	}
	return t.Format(f.layout)
}

// View pairs the raw value with its display form.
func (f DateFormatter) View(raw string) DateView {
	return DateView{Raw: raw, Display: f.Format(raw)}
}
