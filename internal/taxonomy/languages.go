package taxonomy

// Language tags as they appear in release names. Short codes only match
// when delimiter-bounded, so the two-letter entries are safer than they
// look. Detection order follows the table.
var languages = []Language{
	{Code: "multi", Name: "Multilingual", Patterns: []string{`multi(?:[._-]?(?:lang|language|\d))?`, `ml`}},
	{Code: "nordic", Name: "Nordic", Patterns: []string{`nordic`}},
	{Code: "de", Name: "German", Patterns: []string{`german`, `deutsch`, `ger`, `de`}},
	{Code: "en", Name: "English", Patterns: []string{`english`, `eng`, `en`}},
	{Code: "es", Name: "Spanish", Patterns: []string{`spanish`, `castellano`, `spa`, `esp`, `es`}},
	{Code: "fr", Name: "French", Patterns: []string{`french`, `fre`, `fra`, `vf[f2i]?`, `fr`}},
	{Code: "it", Name: "Italian", Patterns: []string{`italian`, `ita`, `it`}},
	{Code: "nl", Name: "Dutch", Patterns: []string{`dutch`, `flemish`, `nl`}},
	{Code: "pl", Name: "Polish", Patterns: []string{`polish`, `pl(?:dub)?`}},
	{Code: "ru", Name: "Russian", Patterns: []string{`russian`, `rus`}},
	{Code: "sv", Name: "Swedish", Patterns: []string{`swedish`, `swe`}},
	{Code: "no", Name: "Norwegian", Patterns: []string{`norwegian`, `nor?`}},
	{Code: "dk", Name: "Danish", Patterns: []string{`danish`, `dan`, `dk`}},
	{Code: "fi", Name: "Finnish", Patterns: []string{`finnish`, `fin`}},
	{Code: "cz", Name: "Czech", Patterns: []string{`czech`, `cz`}},
	{Code: "hu", Name: "Hungarian", Patterns: []string{`hungarian`, `hun`}},
	{Code: "ro", Name: "Romanian", Patterns: []string{`romanian`, `ro`}},
	{Code: "pt", Name: "Portuguese", Patterns: []string{`portuguese`, `pt[._-]?br`, `brazilian`}},
	{Code: "gr", Name: "Greek", Patterns: []string{`greek`, `gr`}},
	{Code: "tr", Name: "Turkish", Patterns: []string{`turkish`, `tr`}},
	{Code: "he", Name: "Hebrew", Patterns: []string{`hebrew`, `heb`}},
	{Code: "ar", Name: "Arabic", Patterns: []string{`arabic`}},
	{Code: "jp", Name: "Japanese", Patterns: []string{`japanese`, `jap`, `jpn`}},
	{Code: "kr", Name: "Korean", Patterns: []string{`korean`, `kor`}},
	{Code: "cn", Name: "Chinese", Patterns: []string{`chinese`, `chs`, `cht`, `mandarin`, `cantonese`}},
	{Code: "th", Name: "Thai", Patterns: []string{`thai`}},
	{Code: "hi", Name: "Hindi", Patterns: []string{`hindi`}},
}
