package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	for _, key := range []string{
		KeyTitle, KeyLCGTab, KeyISBN10Tab, KeyISBN13Tab, KeyCardTab,
		KeySeed, KeyMultiplier, KeyIncrement, KeyModulus, KeyCount,
		KeyGenerate, KeyValidate,
		KeyISBN10Valid, KeyISBN10Invalid, KeyISBN13Valid, KeyISBN13Invalid,
		KeyCardValid, KeyCardInvalid,
		KeyExpectedCheck, KeyInputError, KeyFieldInputError,
	} {
		message.SetString(lang, key, key)
	}
}
