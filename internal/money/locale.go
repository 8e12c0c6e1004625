package money

import (
	"fmt"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/de_DE"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_ES"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fr_FR"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/it_IT"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/ru_RU"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
)

// supportedLocales pairs the BCP-47 tags offered to the matcher with their
// translators. The first entry is the matcher fallback; a fallback match with
// no confidence means the requested locale is unsupported.
var supportedLocales = []struct {
	tag        language.Tag
	translator locales.Translator
}{
	{language.MustParse("en-US"), en_US.New()},
	{language.MustParse("en"), en.New()},
	{language.MustParse("en-GB"), en_GB.New()},
	{language.MustParse("de"), de.New()},
	{language.MustParse("de-DE"), de_DE.New()},
	{language.MustParse("es"), es.New()},
	{language.MustParse("es-ES"), es_ES.New()},
	{language.MustParse("fr"), fr.New()},
	{language.MustParse("fr-FR"), fr_FR.New()},
	{language.MustParse("it"), it.New()},
	{language.MustParse("it-IT"), it_IT.New()},
	{language.MustParse("ja"), ja.New()},
	{language.MustParse("pt"), pt.New()},
	{language.MustParse("pt-BR"), pt_BR.New()},
	{language.MustParse("ru"), ru.New()},
	{language.MustParse("ru-RU"), ru_RU.New()},
	{language.MustParse("zh"), zh.New()},
}

var localeMatcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	localeMatcher = language.NewMatcher(tags)
}

// translatorFor resolves a locale tag to the closest supported translator
func translatorFor(locale string) (locales.Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("unsupported locale %q: %w", locale, err)
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return supportedLocales[index].translator, nil
}
