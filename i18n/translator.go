// Package i18n localizes the headline of verification issues by code.
package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type" for the qualified sum type).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.lookup(code)
	if typ := data["type"]; typ != "" && msg != code {
		if t.lang == "ja" {
			return typ + ": " + msg
		}
		return msg + " in " + typ
	}
	return msg
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_variant":
			return "バリアントが不足しています"
		case "unknown_variant":
			return "未知のバリアントです"
		case "not_sum_type":
			return "直和型ではありません"
		case "non_constant":
			return "定数ではないバリアント名です"
		case "duplicate_variant":
			return "バリアントが重複しています"
		case "unrecorded_type":
			return "ロックファイルに記録されていない型です"
		case "digest_mismatch":
			return "ダイジェストが一致しません"
		}
	default: // "en"
		switch code {
		case "missing_variant":
			return "missing variant"
		case "unknown_variant":
			return "unknown variant"
		case "not_sum_type":
			return "not a sum type"
		case "non_constant":
			return "non-constant variant name"
		case "duplicate_variant":
			return "duplicate variant"
		case "unrecorded_type":
			return "type not recorded in lock file"
		case "digest_mismatch":
			return "digest mismatch"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
