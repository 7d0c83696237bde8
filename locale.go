package termbidi

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Hosts that start an interactive session without text to inspect (an empty
// prompt, say) cannot use first-strong detection. The FromLocale hint derives
// a default from the user's environment instead, the way the original shell
// enabled Arabic mode for Arabic system locales.

var rtlMatch = language.NewMatcher([]language.Tag{
	language.Arabic, // the first language is used as fallback
	language.Hebrew,
	language.Persian,
	language.Urdu,
})

func directionFromLocale() Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Infof("termbidi: cannot detect user locale: %v", err)
		return Auto
	}
	T().Debugf("termbidi: detected user locale %v", userLocale)
	return directionForLocale(userLocale)
}

func directionForLocale(locale string) Direction {
	lang := language.Make(locale)
	if lang == language.Und {
		return Auto
	}
	if _, _, confidence := rtlMatch.Match(lang); confidence == language.No {
		return LeftToRight
	}
	return RightToLeft
}
