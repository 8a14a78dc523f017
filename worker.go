package fluentemoji

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// RunBatch processes one contiguous slice of the full icon list inside a
// worker process and persists the resulting partial map to a fragment file.
// Per-icon failures are logged and skipped; only a condition affecting the
// whole batch, such as an unwritable fragment file, is returned as an error.
func RunBatch(cfg *Config, batch, start, end int) error {
	icons, err := ListIcons(cfg.AssetsDir())
	if err != nil {
		return err
	}
	if end > len(icons) {
		end = len(icons)
	}
	if start < 0 || start > end {
		return fmt.Errorf("invalid batch range [%d, %d)", start, end)
	}

	conv := NewConverter(cfg)
	partial := EmojiMap{}

	for _, name := range icons[start:end] {
		icon, skip := ReadIcon(filepath.Join(cfg.AssetsDir(), name))
		if icon == nil {
			log.Printf("skipping %s: %s", name, skip)
			continue
		}
		if err := processIcon(cfg, conv, icon); err != nil {
			log.Printf("skipping %s: %v", name, err)
			continue
		}
		partial[icon.Key] = icon.Entry
	}

	return partial.WriteFragment(FragmentPath(cfg, batch))
}

// FragmentPath returns the deterministic fragment file path of a batch.
func FragmentPath(cfg *Config, batch int) string {
	return filepath.Join(cfg.ScratchDir(), fmt.Sprintf("fragment-%03d.json", batch))
}

// processIcon converts every raster variant of one icon and copies its flat
// SVG into the output tree.
func processIcon(cfg *Config, conv *Converter, icon *Icon) error {
	for _, v := range icon.Variants {
		src := firstFile(v.Dir, rasterExt)
		if src == "" {
			return fmt.Errorf("no raster source under %s", v.Dir)
		}
		img, err := DecodeImage(src)
		if err != nil {
			return err
		}
		if err := conv.Convert(img, v.Tone.FileName(icon.Key)); err != nil {
			return err
		}
	}

	if icon.VectorFile != "" {
		dst := filepath.Join(cfg.FlatDir(), icon.Key+vectorExt)
		if err := copyFile(icon.VectorFile, dst); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies the vector asset unmodified into the output tree.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open the vector file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the vector file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("unable to copy the vector file: %w", err)
	}
	return nil
}
