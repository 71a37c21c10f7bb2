package language

import (
	"fmt"
	"sort"
	"strings"
)

// Auto asks the server to detect the source language.
const Auto = "auto"

// Language is a code accepted by the translate endpoint in sl/tl/hl.
type Language struct {
	Code string
	Name string
}

// Names maps supported codes to display names.
var Names = map[string]string{
	"af":       "Afrikaans",
	"am":       "Amharic",
	"ar":       "Arabic",
	"as":       "Assamese",
	"az":       "Azerbaijani",
	"be":       "Belarusian",
	"bg":       "Bulgarian",
	"bn":       "Bengali",
	"bs":       "Bosnian",
	"ca":       "Catalan",
	"ceb":      "Cebuano",
	"co":       "Corsican",
	"cs":       "Czech",
	"cy":       "Welsh",
	"da":       "Danish",
	"de":       "German",
	"dv":       "Dhivehi",
	"el":       "Greek",
	"en":       "English",
	"eo":       "Esperanto",
	"es":       "Spanish",
	"et":       "Estonian",
	"eu":       "Basque",
	"fa":       "Persian",
	"fi":       "Finnish",
	"fil":      "Filipino",
	"fr":       "French",
	"fy":       "Frisian",
	"ga":       "Irish",
	"gd":       "Scots Gaelic",
	"gl":       "Galician",
	"gu":       "Gujarati",
	"ha":       "Hausa",
	"haw":      "Hawaiian",
	"hi":       "Hindi",
	"hmn":      "Hmong",
	"hr":       "Croatian",
	"ht":       "Haitian Creole",
	"hu":       "Hungarian",
	"hy":       "Armenian",
	"id":       "Indonesian",
	"ig":       "Igbo",
	"is":       "Icelandic",
	"it":       "Italian",
	"iw":       "Hebrew",
	"ja":       "Japanese",
	"jw":       "Javanese",
	"ka":       "Georgian",
	"kk":       "Kazakh",
	"km":       "Khmer",
	"kn":       "Kannada",
	"ko":       "Korean",
	"ku":       "Kurdish",
	"ky":       "Kyrgyz",
	"la":       "Latin",
	"lb":       "Luxembourgish",
	"lo":       "Lao",
	"lt":       "Lithuanian",
	"lv":       "Latvian",
	"mg":       "Malagasy",
	"mi":       "Maori",
	"mk":       "Macedonian",
	"ml":       "Malayalam",
	"mn":       "Mongolian",
	"mni-Mtei": "Meiteilon (Manipuri)",
	"mr":       "Marathi",
	"ms":       "Malay",
	"mt":       "Maltese",
	"my":       "Myanmar (Burmese)",
	"ne":       "Nepali",
	"nl":       "Dutch",
	"no":       "Norwegian",
	"ny":       "Nyanja (Chichewa)",
	"or":       "Odia (Oriya)",
	"pa":       "Punjabi",
	"pl":       "Polish",
	"ps":       "Pashto",
	"pt":       "Portuguese",
	"ro":       "Romanian",
	"ru":       "Russian",
	"sd":       "Sindhi",
	"si":       "Sinhala (Sinhalese)",
	"sk":       "Slovak",
	"sl":       "Slovenian",
	"sm":       "Samoan",
	"sn":       "Shona",
	"so":       "Somali",
	"sq":       "Albanian",
	"sr":       "Serbian",
	"st":       "Sesotho",
	"su":       "Sundanese",
	"sv":       "Swedish",
	"sw":       "Swahili",
	"ta":       "Tamil",
	"te":       "Telugu",
	"tg":       "Tajik",
	"th":       "Thai",
	"tl":       "Tagalog",
	"tr":       "Turkish",
	"ug":       "Uyghur",
	"uk":       "Ukrainian",
	"ur":       "Urdu",
	"uz":       "Uzbek",
	"vi":       "Vietnamese",
	"xh":       "Xhosa",
	"yi":       "Yiddish",
	"yo":       "Yoruba",
	"zh-CN":    "Chinese (Simplified)",
	"zh-TW":    "Chinese (Traditional)",
	"zu":       "Zulu",
}

// Lookup returns the language for code. Matching is exact except for case.
func Lookup(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if name, ok := Names[code]; ok {
		return Language{Code: code, Name: name}, true
	}
	for k, name := range Names {
		if strings.EqualFold(k, code) {
			return Language{Code: k, Name: name}, true
		}
	}
	return Language{}, false
}

// Name returns the display name for code, or code itself when unknown.
// The server may report languages outside Names.
func Name(code string) string {
	if code == Auto {
		return "Detect language"
	}
	if lang, ok := Lookup(code); ok {
		return lang.Name
	}
	return code
}

// ValidateSource accepts any known code or Auto.
func ValidateSource(code string) error {
	if code == Auto {
		return nil
	}
	if _, ok := Lookup(code); !ok {
		return fmt.Errorf("unsupported source language: %q", code)
	}
	return nil
}

// ValidateTarget accepts any known code. Auto is not a valid target.
func ValidateTarget(code string) error {
	if code == Auto {
		return fmt.Errorf("%q is only valid as a source language", Auto)
	}
	if _, ok := Lookup(code); !ok {
		return fmt.Errorf("unsupported target language: %q", code)
	}
	return nil
}

// Supported returns all languages sorted by Name and then Code.
func Supported() []Language {
	entries := make([]Language, 0, len(Names))
	for k, v := range Names {
		entries = append(entries, Language{Code: k, Name: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Code < entries[j].Code
	})
	return entries
}
