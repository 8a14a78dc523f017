package fluentemoji

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Fixed sub-paths of one upstream icon folder.
const (
	metadataFile = "metadata.json"
	rasterRoot   = "3D"
	vectorRoot   = "Color"
	rasterExt    = ".png"
	vectorExt    = ".svg"
)

// metadata mirrors the descriptor record shipped with every icon folder.
type metadata struct {
	Cldr     string   `json:"cldr"`
	Unicode  string   `json:"unicode"`
	Keywords []string `json:"keywords"`
}

// Variant is one raster rendition of an icon: a skin tone bound to the
// directory holding its source files.
type Variant struct {
	Tone SkinTone
	Dir  string
}

// Icon is the normalized description of one upstream icon folder.
type Icon struct {
	// Dir is the icon folder path.
	Dir string
	// Key is the normalized Unicode key the output assets are named after.
	Key string
	// Entry is the lookup map record produced for this icon.
	Entry EmojiEntry
	// Variants lists the raster renditions found under the 3D sub-path,
	// empty if the icon ships no raster assets.
	Variants []Variant
	// VectorFile is the flat SVG source, empty if the icon ships none.
	VectorFile string
}

// ReadIcon reads one icon folder and returns its normalized description.
// A missing or malformed descriptor record is an expected outcome, reported
// as a nil icon with a non-empty skip reason rather than an error.
func ReadIcon(dir string) (*Icon, string) {
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, fmt.Sprintf("missing metadata record: %v", err)
	}

	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Sprintf("malformed metadata record: %v", err)
	}
	if meta.Unicode == "" {
		return nil, "metadata record carries no unicode codepoint"
	}

	icon := &Icon{
		Dir: dir,
		Key: NormalizeKey(meta.Unicode),
	}
	icon.Variants = findVariants(filepath.Join(dir, rasterRoot))
	icon.VectorFile = findVector(filepath.Join(dir, vectorRoot))

	var suffixes []string
	for _, v := range icon.Variants {
		if v.Tone != ToneDefault {
			suffixes = append(suffixes, v.Tone.Suffix())
		}
	}
	icon.Entry = EmojiEntry{
		Unicode:      icon.Key,
		Cldr:         meta.Cldr,
		Keywords:     meta.Keywords,
		HasSkinTones: len(suffixes) > 0,
		SkinTones:    suffixes,
	}
	return icon, ""
}

// NormalizeKey lowercases a codepoint string and replaces internal whitespace
// with hyphens, turning "1F468 200D 1F373" into "1f468-200d-1f373".
func NormalizeKey(unicode string) string {
	return strings.ToLower(strings.Join(strings.Fields(unicode), "-"))
}

// findVariants probes the raster sub-path of an icon folder. Skin tone
// sub-folders make the icon skin-tone-variant; otherwise the folder itself is
// the single default rendition. A missing raster sub-path yields no variants.
func findVariants(dir string) []Variant {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil
	}

	var variants []Variant
	for _, tone := range SkinTones {
		toneDir := filepath.Join(dir, tone.Folder())
		if fi, err := os.Stat(toneDir); err == nil && fi.IsDir() {
			variants = append(variants, Variant{Tone: tone, Dir: toneDir})
		}
	}
	if len(variants) == 0 {
		variants = append(variants, Variant{Tone: ToneDefault, Dir: dir})
	}
	return variants
}

// findVector resolves the flat SVG source of an icon, preferring the Default
// sub-folder when present. The first SVG file found wins; there is no
// multi-candidate scoring. Returns the empty string when the icon ships none.
func findVector(dir string) string {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return ""
	}
	root := dir
	if fi, err := os.Stat(filepath.Join(dir, ToneDefault.Folder())); err == nil && fi.IsDir() {
		root = filepath.Join(dir, ToneDefault.Folder())
	}
	return firstFile(root, vectorExt)
}

// firstFile returns the first regular file in dir carrying the extension, or
// the empty string when none exists.
func firstFile(dir, ext string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}
