package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

type LocalizationError struct {
	Key    string
	Locale string
	Err    error
}

func (e *LocalizationError) Error() string {
	return fmt.Sprintf("translate %q for %s: %v", e.Key, e.Locale, e.Err)
}

func (e *LocalizationError) Unwrap() error {
	return e.Err
}

// Catalog holds every message file known to the app. It is read-only after
// construction and shared between requests.
type Catalog struct {
	bundle        *i18n.Bundle
	matcher       language.Matcher
	supported     []language.Tag
	defaultLocale string
}

// NewCatalog loads the embedded message files. defaultLocale is used when a
// request does not ask for a language we have.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	// Message files are keyed by base language, so the bundle default must be too.
	base, _ := tag.Base()
	bundle := i18n.NewBundle(language.Make(base.String()))
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(messageFiles, "messages/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, name := range files {
		buf, err := fs.ReadFile(messageFiles, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, path.Base(name)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	supported := bundle.LanguageTags()
	return &Catalog{
		bundle:        bundle,
		matcher:       language.NewMatcher(supported),
		supported:     supported,
		defaultLocale: defaultLocale,
	}, nil
}

// For builds a translator for the given preferences, typically the raw
// Accept-Language header. The catalog default is always the last resort.
func (c *Catalog) For(preferences ...string) *Localizer {
	langs := make([]string, 0, len(preferences)+1)
	for _, p := range preferences {
		if p != "" {
			langs = append(langs, p)
		}
	}
	langs = append(langs, c.defaultLocale)

	return &Localizer{
		localizer: i18n.NewLocalizer(c.bundle, langs...),
		locale:    c.resolve(langs).String(),
	}
}

// resolve picks the supported language the localizer will answer in.
// Unparseable preferences are skipped.
func (c *Catalog) resolve(langs []string) language.Tag {
	var tags []language.Tag
	for _, l := range langs {
		parsed, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	_, idx, _ := c.matcher.Match(tags...)
	return c.supported[idx]
}

func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

type Localizer struct {
	localizer *i18n.Localizer
	locale    string
}

func (l *Localizer) Translate(key string) (string, error) {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		// go-i18n reports a miss in the preferred language even when it
		// fell back to the default one.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			return msg, nil
		}
		return "", &LocalizationError{Key: key, Locale: l.locale, Err: err}
	}
	return msg, nil
}
