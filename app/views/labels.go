package views

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Labels are the fixed UI strings of every view, resolved for one locale.
type Labels struct {
	HomeHeading     string
	HomeSubheading  string
	ReadMore        string
	Back            string
	NotFoundHeading string
	NotFoundMessage string
	GoHome          string
}

var defaultMessages = []*i18n.Message{
	{ID: "HomeHeading", Other: "Latest posts"},
	{ID: "HomeSubheading", Other: "A super basic blog: list view here, individual post pages via slugs."},
	{ID: "ReadMore", Other: "Read more →"},
	{ID: "Back", Other: "← Back"},
	{ID: "NotFoundHeading", Other: "404 — Not found"},
	{ID: "NotFoundMessage", Other: "The page you’re looking for doesn’t exist."},
	{ID: "GoHome", Other: "Go home"},
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return bundle, nil
}

// LoadLabels resolves every label for tag, falling back to English for
// missing translations.
func LoadLabels(tag language.Tag) (Labels, error) {
	bundle, err := newBundle()
	if err != nil {
		return Labels{}, err
	}
	localizer := i18n.NewLocalizer(bundle, tag.String())

	resolved := make(map[string]string, len(defaultMessages))
	for _, msg := range defaultMessages {
		s, err := localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: msg})
		// A partial catalog still yields the English default alongside a
		// not-found error.
		var notFound *i18n.MessageNotFoundErr
		if err != nil && !errors.As(err, &notFound) {
			return Labels{}, fmt.Errorf("failed to localize %s: %w", msg.ID, err)
		}
		resolved[msg.ID] = s
	}

	return Labels{
		HomeHeading:     resolved["HomeHeading"],
		HomeSubheading:  resolved["HomeSubheading"],
		ReadMore:        resolved["ReadMore"],
		Back:            resolved["Back"],
		NotFoundHeading: resolved["NotFoundHeading"],
		NotFoundMessage: resolved["NotFoundMessage"],
		GoHome:          resolved["GoHome"],
	}, nil
}
