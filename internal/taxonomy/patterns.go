package taxonomy

// The tables below follow scene tagging conventions. Order matters
// everywhere: the attribute matcher walks each table top to bottom and the
// first key whose pattern matches claims the token, so longer or more
// specific tags sit above the short ambiguous ones (WEB-DL before WEB,
// XBOX360 before XBOX).

var sources = []Entry{
	{Key: "MBluray", Patterns: []string{`(?:complete[._-])?m[._-]?blu[._-]?ray`}},
	{Key: "MDVDR", Patterns: []string{`mdvd[r9]?`}},
	{Key: "DDC", Patterns: []string{`ddc`}},
	{Key: "BDRip", Patterns: []string{`bd[._-]?rip`}},
	{Key: "BRRip", Patterns: []string{`brrip`}},
	{Key: "Bluray", Patterns: []string{`blu[._-]?ray`, `complete[._-]bluray`, `bd(?:25|50|66|100)?`}},
	{Key: "DVDRip", Patterns: []string{`dvd[._-]?rip`}},
	{Key: "Screener", Patterns: []string{`(?:bd|dvd|hd[._-]?|web[._-]?)?scr(?:eener)?`, `dvdscreener`}},
	{Key: "DVD", Patterns: []string{`dvd[59]?`, `complete[._-]dvd`}},
	{Key: "WEB-DL", Patterns: []string{`web[._-]dl`, `webdl`}},
	{Key: "WEBRip", Patterns: []string{`web[._-]?rip`}},
	{Key: "Web Single", Patterns: []string{`web[._-]?single`}},
	{Key: "WEB", Patterns: []string{`web`}},
	{Key: "HDTV", Patterns: []string{`a?hdtv(?:[._-]?rip)?`}},
	{Key: "PDTV", Patterns: []string{`pdtv(?:[._-]?rip)?`}},
	{Key: "SDTV", Patterns: []string{`sdtv(?:[._-]?rip)?`, `tv[._-]?rip`}},
	{Key: "SAT", Patterns: []string{`sat[._-]?rip`, `dvb(?:[._-]?rip)?`}},
	{Key: "DSR", Patterns: []string{`dsr(?:ip)?`}},
	{Key: "CAM", Patterns: []string{`(?:hd)?cam(?:[._-]?rip)?`}},
	// The bare TS tag is matched case sensitively by the extractor: in
	// lowercase it collides with ordinary words and the Tsonga language code.
	{Key: "Telesync", Patterns: []string{`TS`, `hd[._-]?ts`, `telesync`}},
	{Key: "Telecine", Patterns: []string{`tc`, `telecine`}},
	{Key: "Workprint", Patterns: []string{`wp`, `workprint`}},
	{Key: "R5", Patterns: []string{`r5(?:[._-]?line)?`}},
	{Key: "VHS", Patterns: []string{`vhs(?:[._-]?rip)?`}},
	{Key: "LaserDisc", Patterns: []string{`(?:laser[._-]?disc|ld)[._-]?rip`}},
	{Key: "CD", Patterns: []string{`\d*cds?`, `cd[._-]?(?:rip|album|single|maxi|ep)`}},
	{Key: "Vinyl", Patterns: []string{`vinyl`, `vls`, `(?:12|7)[._-]?inch`, `\d*lp`}},
	{Key: "Tape", Patterns: []string{`tape`}},
	{Key: "Radio", Patterns: []string{`fm`, `radio`, `dab`, `sbd`, `soundboard`}},
	{Key: "Line", Patterns: []string{`line`}},
	{Key: "RAWRip", Patterns: []string{`raw[._-]?rip`}},
}

var formats = []Entry{
	{Key: "x265", Patterns: []string{`x265`}},
	{Key: "x264", Patterns: []string{`x264`}},
	{Key: "h265", Patterns: []string{`h[._-]?265`}},
	{Key: "h264", Patterns: []string{`h[._-]?264`}},
	{Key: "HEVC", Patterns: []string{`hevc(?:[._-]?10bit)?`}},
	{Key: "AVC", Patterns: []string{`avc`}},
	{Key: "XviD", Patterns: []string{`xvid`}},
	{Key: "DivX", Patterns: []string{`divx\d*`}},
	{Key: "MPEG2", Patterns: []string{`mpeg2`}},
	{Key: "SVCD", Patterns: []string{`svcd`}},
	{Key: "VCD", Patterns: []string{`vcd`}},
	{Key: "DVDR", Patterns: []string{`dvdr`, `dvd[._-]?r`}},
	{Key: "WMV", Patterns: []string{`wmv`}},
	{Key: "MP3", Patterns: []string{`mp3`}},
	{Key: "FLAC", Patterns: []string{`flac`}},
	{Key: "WAV", Patterns: []string{`wav`}},
	{Key: "OGG", Patterns: []string{`ogg`}},
	{Key: "EPUB", Patterns: []string{`epub`}},
	{Key: "PDF", Patterns: []string{`pdf`}},
	{Key: "MOBI", Patterns: []string{`mobi`}},
	{Key: "AZW", Patterns: []string{`azw3?`}},
	{Key: "CBR", Patterns: []string{`cbr`}},
	{Key: "CBZ", Patterns: []string{`cbz`}},
	{Key: "Hybrid", Patterns: []string{`hybrid`}},
	{Key: "Multiformat", Patterns: []string{`multiformat`}},
	{Key: "ISO", Patterns: []string{`iso`}},
	{Key: "JAVA", Patterns: []string{`java`, `j2me[._-]?app`}},
}

var resolutions = []Entry{
	{Key: "4320p", Patterns: []string{`4320p`, `8k`}},
	{Key: "2160p", Patterns: []string{`2160p`, `4k`, `uhd`}},
	{Key: "1080p", Patterns: []string{`1080p`}},
	{Key: "1080i", Patterns: []string{`1080i`}},
	{Key: "720p", Patterns: []string{`720p`}},
	{Key: "576p", Patterns: []string{`576p`}},
	{Key: "480p", Patterns: []string{`480p`}},
	{Key: "NTSC", Patterns: []string{`ntsc`}},
	{Key: "PAL", Patterns: []string{`pal`}},
	{Key: "SD", Patterns: []string{`sd`}},
}

var audio = []Entry{
	{Key: "DTS-HD", Patterns: []string{`dts[._-]?hd(?:[._-]?ma)?`}},
	{Key: "DTS-ES", Patterns: []string{`dts[._-]?es`}},
	{Key: "DTS", Patterns: []string{`dts`}},
	{Key: "EAC3", Patterns: []string{`eac3`, `dd\+`, `ddp(?:[._-]?[257][._-]?[01])?`}},
	{Key: "AC3", Patterns: []string{`ac3(?:d|dub(?:bed)?)?`}},
	{Key: "Dolby Digital", Patterns: []string{`dolby[._-]?digital`, `dd[._-]?[257][._-]?[01]`}},
	{Key: "TrueHD", Patterns: []string{`true[._-]?hd`}},
	{Key: "Atmos", Patterns: []string{`atmos`}},
	{Key: "AAC", Patterns: []string{`aac(?:[._-]?lc)?\d*`}},
	{Key: "Dual Audio", Patterns: []string{`dual[._-]?audio`}},
	{Key: "24BIT", Patterns: []string{`24[._-]?bit`}},
}

var devices = []Entry{
	{Key: "PS5", Patterns: []string{`ps5`}},
	{Key: "PS4", Patterns: []string{`ps4`}},
	{Key: "PS3", Patterns: []string{`ps3`}},
	{Key: "PSP", Patterns: []string{`psp`}},
	{Key: "PS Vita", Patterns: []string{`psv(?:ita)?`}},
	{Key: "PSX", Patterns: []string{`psx`, `ps[._-]?one`}},
	{Key: "Playstation", Patterns: []string{`playstation`}},
	{Key: "XBOX360", Patterns: []string{`xbox[._-]?360`, `x360`}},
	{Key: "XBOXONE", Patterns: []string{`xbox[._-]?one`}},
	{Key: "XBOX", Patterns: []string{`xbox`}},
	{Key: "NSW", Patterns: []string{`nsw`, `switch`}},
	{Key: "WiiU", Patterns: []string{`wii[._-]?u`}},
	{Key: "Wii", Patterns: []string{`wii`}},
	{Key: "NDS", Patterns: []string{`nds`}},
	{Key: "3DS", Patterns: []string{`3ds`}},
	{Key: "GBA", Patterns: []string{`gba`, `game[._-]?boy[._-]?advance`}},
	{Key: "GameCube", Patterns: []string{`game[._-]?cube`, `ngc`}},
	{Key: "N64", Patterns: []string{`n64`}},
	{Key: "Dreamcast", Patterns: []string{`dreamcast`, `dc[._-]?iso`}},
	{Key: "N-Gage", Patterns: []string{`n[._-]?gage`}},
	{Key: "Nokia", Patterns: []string{`nokia(?:[._-]?n?\d{2,4})?`, `n\d{4}`}},
	{Key: "SonyEricsson", Patterns: []string{`sony[._-]?ericsson`, `[kwt]\d{3}i?`}},
}

var systems = []Entry{
	{Key: "Windows", Patterns: []string{`win(?:dows)?(?:[._-]?(?:all|32|64|9x|nt|2k|xp|vista|7|8|10|11))?`, `w32`, `winall`}},
	{Key: "macOS", Patterns: []string{`mac[._-]?osx?`, `osx`, `macos`}},
	{Key: "Linux", Patterns: []string{`linux`, `debian`, `ubuntu`, `centos`, `redhat`}},
	{Key: "Unix", Patterns: []string{`unix`, `solaris`, `sunos`, `freebsd`, `netbsd`, `openbsd`, `hp[._-]?ux`, `aix`, `irix`}},
	{Key: "Android", Patterns: []string{`android`, `apk`}},
	{Key: "iOS", Patterns: []string{`ios`, `iphone[._-]?os`}},
	{Key: "Symbian", Patterns: []string{`symbian(?:[._-]?os)?`, `s[68]0(?:v[1-5])?`, `series[._-]?[346]0`, `s40`, `uiq\d?`}},
	{Key: "PalmOS", Patterns: []string{`palm(?:[._-]?os)?\d*`}},
	{Key: "WinCE", Patterns: []string{`win(?:dows)?[._-]?(?:ce|mobile)`}},
	{Key: "J2ME", Patterns: []string{`j2me`, `midp\d*`}},
	{Key: "DOS", Patterns: []string{`ms[._-]?dos`, `dos`}},
}

var flags = []Entry{
	{Key: "Directors Cut", Patterns: []string{`director'?s?[._-]?cut`}},
	{Key: "Extended", Patterns: []string{`extended(?:[._-]?(?:cut|edition|version))?`}},
	{Key: "Theatrical", Patterns: []string{`theatrical(?:[._-]?cut)?`}},
	{Key: "Uncut", Patterns: []string{`uncut`}},
	{Key: "Unrated", Patterns: []string{`unrated`}},
	{Key: "Remastered", Patterns: []string{`remaster(?:ed)?`}},
	{Key: "Restored", Patterns: []string{`restored`}},
	{Key: "Criterion", Patterns: []string{`criterion(?:[._-]?(?:collection|edition))?`}},
	{Key: "IMAX", Patterns: []string{`imax`}},
	{Key: "3D", Patterns: []string{`3d(?:[._-]?(?:hsbs|hou|sbs))?`}},
	{Key: "Hybrid", Patterns: []string{`hybrid`}},
	{Key: "HDR", Patterns: []string{`hdr10(?:\+|plus)?`, `hdr`}},
	{Key: "Dolby Vision", Patterns: []string{`dolby[._-]?vision`, `dovi`, `dv`}},
	{Key: "Proper", Patterns: []string{`proper`, `real[._-]?proper`}},
	{Key: "Repack", Patterns: []string{`re[._-]?packs?`}},
	{Key: "Rerip", Patterns: []string{`re[._-]?rip`}},
	{Key: "Internal", Patterns: []string{`i?nternal`, `int`}},
	{Key: "Limited", Patterns: []string{`limited`}},
	{Key: "Festival", Patterns: []string{`festival`}},
	{Key: "STV", Patterns: []string{`stv`}},
	{Key: "Complete", Patterns: []string{`complete`}},
	{Key: "READNFO", Patterns: []string{`read[._-]?nfo`}},
	{Key: "Dubbed", Patterns: []string{`dubbed`}},
	{Key: "Subbed", Patterns: []string{`subbed`, `multi[._-]?subs?`}},
	{Key: "Line Dubbed", Patterns: []string{`line[._-]?dubbed`, `ld`}},
	{Key: "Mic Dubbed", Patterns: []string{`mic[._-]?dubbed`, `md`}},
	{Key: "TV Dubbed", Patterns: []string{`tv[._-]?dubbed`}},
	{Key: "Retail", Patterns: []string{`retail`}},
	{Key: "Cracked", Patterns: []string{`cracked`, `crack(?:[._-]?only)?`}},
	{Key: "Crackfix", Patterns: []string{`crack[._-]?fix`}},
	{Key: "Regged", Patterns: []string{`regged`}},
	{Key: "Keygen", Patterns: []string{`(?:incl[._-]?)?key(?:gen|maker)`}},
	{Key: "Portable", Patterns: []string{`portable`}},
	{Key: "DLC", Patterns: []string{`(?:incl[._-])?dlcs?(?:[._-]?(?:pack|unlocker))?`}},
	{Key: "Trainer", Patterns: []string{`(?:\+\d+[._-]?)?trainer`}},
	{Key: "GOG", Patterns: []string{`gog`}},
	{Key: "Update", Patterns: []string{`update(?:[._-]?only)?`}},
	{Key: "OVA", Patterns: []string{`ova`}},
	{Key: "ONA", Patterns: []string{`ona`}},
	{Key: "OAD", Patterns: []string{`oad`}},
	{Key: "Anime", Patterns: []string{`anime`}},
	{Key: "eBook", Patterns: []string{`ebook`}},
	{Key: "Magazine", Patterns: []string{`magazines?`}},
	{Key: "Comic", Patterns: []string{`comics?(?:[._-]?collection)?`}},
	{Key: "FONT", Patterns: []string{`fonts?(?:[._-]?(?:set|pack|collection))?`, `(?:true|open)type`}},
	{Key: "Docu", Patterns: []string{`docu(?:mentary)?`, `doku`}},
	{Key: "XXX", Patterns: []string{`xxx`}},
	{Key: "Imageset", Patterns: []string{`imagesets?`, `image[._-]?set`, `picsets?`}},
	{Key: "OST", Patterns: []string{`ost`, `soundtrack`}},
	{Key: "Bootleg", Patterns: []string{`bootleg`}},
	{Key: "Promo", Patterns: []string{`promo`}},
	{Key: "Tutorial", Patterns: []string{`tutorials?`, `bookware`}},
}
