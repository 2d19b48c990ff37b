package taxonomy

var months = []Entry{
	{Key: "1", Patterns: []string{`jan(?:uary|uar)?`}},
	{Key: "2", Patterns: []string{`feb(?:ruary|ruar)?`}},
	{Key: "3", Patterns: []string{`mar(?:ch|z)?`}},
	{Key: "4", Patterns: []string{`apr(?:il)?`}},
	{Key: "5", Patterns: []string{`may|mai`}},
	{Key: "6", Patterns: []string{`jun[ei]?`}},
	{Key: "7", Patterns: []string{`jul[yi]?`}},
	{Key: "8", Patterns: []string{`aug(?:ust)?`}},
	{Key: "9", Patterns: []string{`sep(?:tember)?t?`}},
	{Key: "10", Patterns: []string{`o[ck]t(?:ober)?`}},
	{Key: "11", Patterns: []string{`nov(?:ember)?`}},
	{Key: "12", Patterns: []string{`de[cz](?:ember)?`}},
}

var sports = []Entry{
	{Key: "Formula 1", Patterns: []string{`formula[._-]?(?:1|one)`, `f1`}},
	{Key: "Formula E", Patterns: []string{`formula[._-]?e`}},
	{Key: "MotoGP", Patterns: []string{`moto[._-]?gp[23]?`}},
	{Key: "NASCAR", Patterns: []string{`nascar`}},
	{Key: "WRC", Patterns: []string{`wrc`}},
	{Key: "DTM", Patterns: []string{`dtm`}},
	{Key: "NFL", Patterns: []string{`nfl`}},
	{Key: "NBA", Patterns: []string{`nba`}},
	{Key: "NHL", Patterns: []string{`nhl`}},
	{Key: "MLB", Patterns: []string{`mlb`}},
	{Key: "NCAA", Patterns: []string{`ncaa`}},
	{Key: "UFC", Patterns: []string{`ufc`}},
	{Key: "WWE", Patterns: []string{`wwe`}},
	{Key: "AEW", Patterns: []string{`aew`}},
	{Key: "Premier League", Patterns: []string{`premier[._-]?league`, `epl`}},
	{Key: "Bundesliga", Patterns: []string{`\d?[._-]?bundesliga`}},
	{Key: "La Liga", Patterns: []string{`la[._-]?liga`}},
	{Key: "Serie A", Patterns: []string{`serie[._-]?a`}},
	{Key: "Champions League", Patterns: []string{`(?:uefa[._-]?)?champions[._-]?league`}},
	{Key: "World Cup", Patterns: []string{`(?:fifa[._-]?)?world[._-]?cup`}},
	{Key: "ATP", Patterns: []string{`atp`}},
	{Key: "WTA", Patterns: []string{`wta`}},
	{Key: "Olympics", Patterns: []string{`olympi(?:cs|a|ad)`}},
}

// Vendor prefixes that mark bookware/training releases.
var bookware = []string{
	`lynda(?:\.com)?`,
	`udemy`,
	`pluralsight`,
	`skillshare`,
	`packt(?:pub)?`,
	`o[._-]?reilly`,
	`linkedin(?:[._-]?learning)?`,
	`cbt[._-]?nuggets`,
	`video2brain`,
	`trainsignal`,
	`tutsplus`,
	`infiniteskills`,
	`career[._-]?academy`,
	`digital[._-]?tutors`,
	`kelbyone`,
	`sitepoint`,
	`egghead`,
	`coursera`,
	`masterclass`,
	`pbs[._-]?training`,
}

// Groups that release applications (0day) and games. Membership feeds the
// classifier only; the group field itself comes from the trailing tag.
var groupsApp = []string{
	"Lz0", "CORE", "ZWT", "CRD", "DVT", "ORION", "SSG", "BEAN", "CAFE",
	"EMBRACE", "AMPED", "DIGERATI", "F4CG", "MAGNiTUDE", "NGEN", "iNViSiBLE",
	"TE", "XFORCE", "BTCR", "UCT",
}

var groupsGame = []string{
	"RELOADED", "CODEX", "SKIDROW", "PLAZA", "CPY", "PROPHET", "RAZOR1911",
	"HOODLUM", "FLT", "FAiRLiGHT", "TENOKE", "RUNE", "DARKSiDERS", "TiNYiSO",
	"DODI", "FitGirl", "EMPRESS", "STEAMPUNKS", "3DM", "VACE", "OUTLAWS",
	"DELiGHT", "SiMPLEX", "ANOMALY",
}

// Section hints: when the filename alone cannot decide a type, the caller's
// section label is tested against these patterns in order.
var hints = []Hint{
	{Type: "ABook", Patterns: []string{`a(?:udio)?[._-]?books?`}},
	{Type: "eBook", Patterns: []string{`e?books?`, `comics?`, `magazines?`}},
	{Type: "Bookware", Patterns: []string{`bookware`, `tutorials?`, `training`, `courses?`}},
	{Type: "Font", Patterns: []string{`fonts?`}},
	{Type: "Anime", Patterns: []string{`anime`}},
	{Type: "XXX", Patterns: []string{`xxx`, `adult`, `porn`, `imgset`}},
	{Type: "Sports", Patterns: []string{`sports?`}},
	{Type: "Docu", Patterns: []string{`docus?`, `documentar(?:y|ies)`}},
	{Type: "MusicVideo", Patterns: []string{`m(?:usic)?[._-]?v(?:ideo)?s?`, `mbluray`, `mdvdr?`}},
	{Type: "Music", Patterns: []string{`music`, `mp3`, `flac`, `audio`, `charts`}},
	{Type: "Game", Patterns: []string{`games?`, `console`, `nsw`, `ps[2345]`, `xbox`, `wii`}},
	{Type: "App", Patterns: []string{`apps?`, `software`, `0[._-]?day`, `pda`}},
	{Type: "TV", Patterns: []string{`tv(?:[._-]?(?:shows?|series))?`, `series`, `episodes?`, `hdtv`}},
	{Type: "Movie", Patterns: []string{`movies?`, `films?`, `x264`, `x265`, `xvid`, `bluray`, `screener`}},
}
