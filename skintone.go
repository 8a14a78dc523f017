package fluentemoji

// SkinTone is one of the six fixed skin tone variants an icon can carry.
type SkinTone int

// The closed set of skin tone variants. Default carries no Unicode modifier,
// the other five map to a fixed modifier codepoint.
const (
	ToneDefault SkinTone = iota
	ToneLight
	ToneMediumLight
	ToneMedium
	ToneMediumDark
	ToneDark
)

// SkinTones lists every variant in upstream folder order.
var SkinTones = []SkinTone{
	ToneDefault,
	ToneLight,
	ToneMediumLight,
	ToneMedium,
	ToneMediumDark,
	ToneDark,
}

var toneFolders = map[SkinTone]string{
	ToneDefault:     "Default",
	ToneLight:       "Light",
	ToneMediumLight: "Medium-Light",
	ToneMedium:      "Medium",
	ToneMediumDark:  "Medium-Dark",
	ToneDark:        "Dark",
}

var toneSuffixes = map[SkinTone]string{
	ToneDefault:     "",
	ToneLight:       "1f3fb",
	ToneMediumLight: "1f3fc",
	ToneMedium:      "1f3fd",
	ToneMediumDark:  "1f3fe",
	ToneDark:        "1f3ff",
}

// Folder returns the upstream sub-folder name of the variant.
func (t SkinTone) Folder() string {
	return toneFolders[t]
}

// Suffix returns the Unicode modifier codepoint appended to the output file
// name, or the empty string for the default variant.
func (t SkinTone) Suffix() string {
	return toneSuffixes[t]
}

// FileName returns the output file name of the variant: the base Unicode key
// for the default variant, the key plus the modifier suffix otherwise.
func (t SkinTone) FileName(key string) string {
	if t == ToneDefault {
		return key
	}
	return key + "-" + t.Suffix()
}
