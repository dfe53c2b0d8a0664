package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Korean

	message.SetString(lang, KeyTitle, "체크 디지트 검증 + 선형 합동 생성기")
	message.SetString(lang, KeyLCGTab, "선형 합동 생성기")
	message.SetString(lang, KeyISBN10Tab, "ISBN-10 검증")
	message.SetString(lang, KeyISBN13Tab, "ISBN-13 검증")
	message.SetString(lang, KeyCardTab, "신용카드 검증")
	message.SetString(lang, KeySeed, "Seed (x₀)")
	message.SetString(lang, KeyMultiplier, "Multiplier (a)")
	message.SetString(lang, KeyIncrement, "Increment (c)")
	message.SetString(lang, KeyModulus, "Modulus (m)")
	message.SetString(lang, KeyCount, "Count")
	message.SetString(lang, KeyGenerate, "생성")
	message.SetString(lang, KeyValidate, "검증")
	message.SetString(lang, KeyISBN10Valid, "✅ 유효한 ISBN-10입니다!")
	message.SetString(lang, KeyISBN10Invalid, "❌ 유효하지 않은 ISBN-10입니다!")
	message.SetString(lang, KeyISBN13Valid, "✅ 유효한 ISBN-13입니다!")
	message.SetString(lang, KeyISBN13Invalid, "❌ 유효하지 않은 ISBN-13입니다!")
	message.SetString(lang, KeyCardValid, "✅ 유효한 신용카드 번호입니다!")
	message.SetString(lang, KeyCardInvalid, "❌ 유효하지 않은 신용카드 번호입니다!")
	message.SetString(lang, KeyExpectedCheck, "올바른 체크 문자: %s")
	message.SetString(lang, KeyInputError, "입력 오류! %s")
	message.SetString(lang, KeyFieldInputError, "%s 입력 오류! %s")
}
