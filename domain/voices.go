package domain

// Option is one selectable entry for the form's dropdowns.
type Option struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// FormStats backs the footer metrics on the form page.
type FormStats struct {
	Models      int `json:"models"`
	Voices      int `json:"voices"`
	Languages   int `json:"languages"`
	MaxSpeakers int `json:"max_speakers"`
}

// Models lists the preview TTS model variants.
var Models = map[string]string{
	"gemini-2.5-flash-preview-tts": "Gemini 2.5 Flash Preview TTS",
	"gemini-2.5-pro-preview-tts":   "Gemini 2.5 Pro Preview TTS",
}

// Voices maps the 30 prebuilt voice presets to their documented character.
var Voices = map[string]string{
	"Zephyr":        "Zephyr - Bright",
	"Puck":          "Puck - Upbeat",
	"Charon":        "Charon - Informative",
	"Kore":          "Kore - Firm",
	"Fenrir":        "Fenrir - Excitable",
	"Leda":          "Leda - Youthful",
	"Orus":          "Orus - Firm",
	"Aoede":         "Aoede - Breezy",
	"Callirrhoe":    "Callirrhoe - Easy-going",
	"Autonoe":       "Autonoe - Bright",
	"Enceladus":     "Enceladus - Breathy",
	"Iapetus":       "Iapetus - Clear",
	"Umbriel":       "Umbriel - Easy-going",
	"Algieba":       "Algieba - Smooth",
	"Despina":       "Despina - Smooth",
	"Erinome":       "Erinome - Clear",
	"Algenib":       "Algenib - Gravelly",
	"Rasalgethi":    "Rasalgethi - Informative",
	"Laomedeia":     "Laomedeia - Upbeat",
	"Achernar":      "Achernar - Soft",
	"Alnilam":       "Alnilam - Firm",
	"Schedar":       "Schedar - Even",
	"Gacrux":        "Gacrux - Mature",
	"Pulcherrima":   "Pulcherrima - Forward",
	"Achird":        "Achird - Friendly",
	"Zubenelgenubi": "Zubenelgenubi - Casual",
	"Vindemiatrix":  "Vindemiatrix - Gentle",
	"Sadachbia":     "Sadachbia - Lively",
	"Sadaltager":    "Sadaltager - Knowledgeable",
	"Sulafat":       "Sulafat - Warm",
}

// Languages lists the locales the preview models support. The API detects
// the language from the input text; the list is informational for the form.
var Languages = map[string]string{
	"ar-EG": "Arabic (Egyptian)",
	"en-US": "English (US)",
	"de-DE": "German (Germany)",
	"es-US": "Spanish (US)",
	"fr-FR": "French (France)",
	"hi-IN": "Hindi (India)",
	"id-ID": "Indonesian (Indonesia)",
	"it-IT": "Italian (Italy)",
	"ja-JP": "Japanese (Japan)",
	"ko-KR": "Korean (Korea)",
	"pt-BR": "Portuguese (Brazil)",
	"ru-RU": "Russian (Russia)",
	"nl-NL": "Dutch (Netherlands)",
	"pl-PL": "Polish (Poland)",
	"th-TH": "Thai (Thailand)",
	"tr-TR": "Turkish (Turkey)",
	"vi-VN": "Vietnamese (Vietnam)",
	"ro-RO": "Romanian (Romania)",
	"uk-UA": "Ukrainian (Ukraine)",
	"bn-BD": "Bengali (Bangladesh)",
	"en-IN": "English (India)",
	"mr-IN": "Marathi (India)",
	"ta-IN": "Tamil (India)",
	"te-IN": "Telugu (India)",
}
