package fluentemoji

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		n, size  int
		expected int
	}{
		{0, 200, 0},
		{1, 200, 1},
		{200, 200, 1},
		{201, 200, 2},
		{1000, 200, 5},
		{1001, 200, 6},
	}

	for _, test := range tests {
		spans := Partition(test.n, test.size)
		if len(spans) != test.expected {
			t.Errorf("Partitioning %d items by %d expected to yield %d spans. Got %d",
				test.n, test.size, test.expected, len(spans))
		}
	}
}

func TestPartition_DisjointOrderedCover(t *testing.T) {
	const n, size = 1042, 200

	next := 0
	for _, span := range Partition(n, size) {
		if span.Start != next {
			t.Errorf("Span expected to start at %d. Got %d", next, span.Start)
		}
		if span.End <= span.Start {
			t.Errorf("Span %+v expected to be non-empty", span)
		}
		if span.End-span.Start > size {
			t.Errorf("Span %+v expected to hold at most %d items", span, size)
		}
		next = span.End
	}
	if next != n {
		t.Errorf("Spans expected to cover all %d items. Got %d", n, next)
	}
}

func TestMergeFragments_Union(t *testing.T) {
	scratch := t.TempDir()

	a := EmojiMap{"1f44d": {Unicode: "1f44d", Cldr: "thumbs up"}}
	b := EmojiMap{"2693": {Unicode: "2693", Cldr: "anchor"}}
	if err := a.WriteFragment(filepath.Join(scratch, "fragment-000.json")); err != nil {
		t.Fatal(err)
	}
	if err := b.WriteFragment(filepath.Join(scratch, "fragment-001.json")); err != nil {
		t.Fatal(err)
	}

	final, err := MergeFragments(scratch)
	if err != nil {
		t.Fatalf("Merge expected to succeed. Got %v", err)
	}

	if len(final) != 2 {
		t.Errorf("Final map expected to hold 2 entries. Got %v", len(final))
	}
	if final["1f44d"].Cldr != "thumbs up" || final["2693"].Cldr != "anchor" {
		t.Errorf("Final map expected to be the union of both fragments. Got %v", final)
	}
}

func TestMergeFragments_LastWriterWins(t *testing.T) {
	scratch := t.TempDir()

	first := EmojiMap{"1f44d": {Unicode: "1f44d", Cldr: "first"}}
	second := EmojiMap{"1f44d": {Unicode: "1f44d", Cldr: "second"}}
	if err := first.WriteFragment(filepath.Join(scratch, "fragment-000.json")); err != nil {
		t.Fatal(err)
	}
	if err := second.WriteFragment(filepath.Join(scratch, "fragment-001.json")); err != nil {
		t.Fatal(err)
	}

	final, err := MergeFragments(scratch)
	if err != nil {
		t.Fatalf("Merge expected to succeed. Got %v", err)
	}

	if len(final) != 1 {
		t.Errorf("Final map expected to hold 1 entry. Got %v", len(final))
	}
	if final["1f44d"].Cldr != "second" {
		t.Errorf("Colliding key expected to resolve last-writer-wins. Got %q", final["1f44d"].Cldr)
	}
}

func TestMergeFragments_SkipsCorruptFragment(t *testing.T) {
	scratch := t.TempDir()

	good := EmojiMap{"2693": {Unicode: "2693", Cldr: "anchor"}}
	if err := good.WriteFragment(filepath.Join(scratch, "fragment-000.json")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(scratch, "fragment-001.json"), []byte("{corrupt"), 0644); err != nil {
		t.Fatal(err)
	}

	final, err := MergeFragments(scratch)
	if err != nil {
		t.Fatalf("Merge expected to skip the corrupt fragment. Got %v", err)
	}
	if len(final) != 1 || final["2693"].Cldr != "anchor" {
		t.Errorf("Final map expected to hold the intact fragment only. Got %v", final)
	}
}

func TestListIcons_DirectChildrenOnly(t *testing.T) {
	assets := t.TempDir()
	for _, name := range []string{"anchor", "zebra"} {
		if err := os.MkdirAll(filepath.Join(assets, name, "3D"), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(assets, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	icons, err := ListIcons(assets)
	if err != nil {
		t.Fatalf("Enumeration expected to succeed. Got %v", err)
	}

	if len(icons) != 2 {
		t.Fatalf("Enumeration expected to yield 2 icon folders. Got %v", icons)
	}
	if icons[0] != "anchor" || icons[1] != "zebra" {
		t.Errorf("Enumeration expected to be sorted. Got %v", icons)
	}
}

func TestRun_FailedBatchContributesNothing(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{
		SourceDir: filepath.Join(root, "src"),
		OutDir:    filepath.Join(root, "out"),
		BatchSize: 2,
		Quality:   DefaultQuality,
		SkipFetch: true,
	}
	addMetaIcon(t, cfg, "anchor", `{"cldr": "anchor", "unicode": "2693", "keywords": ["anchor"]}`)
	addMetaIcon(t, cfg, "bear", `{"cldr": "bear", "unicode": "1F43B", "keywords": ["bear"]}`)
	addMetaIcon(t, cfg, "cat", `{"cldr": "cat", "unicode": "1F431", "keywords": ["cat"]}`)
	addMetaIcon(t, cfg, "dog", `{"cldr": "dog", "unicode": "1F415", "keywords": ["dog"]}`)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	b := &Builder{
		Config: cfg,
		Worker: func(batch int, span Span) error {
			if batch == 0 {
				return errors.New("worker crashed")
			}
			return RunBatch(cfg, batch, span.Start, span.End)
		},
	}

	count, err := b.Run()
	if err != nil {
		t.Fatalf("Run expected to tolerate the failing batch. Got %v", err)
	}
	if count != 2 {
		t.Errorf("Final map expected to hold 2 entries. Got %v", count)
	}

	data, err := os.ReadFile(cfg.MapFile())
	if err != nil {
		t.Fatalf("Final map expected to be written. Got %v", err)
	}
	var final EmojiMap
	if err := json.Unmarshal(data, &final); err != nil {
		t.Fatalf("Final map expected to be valid JSON. Got %v", err)
	}

	for _, key := range []string{"1f431", "1f415"} {
		if _, ok := final[key]; !ok {
			t.Errorf("Surviving batch entry %s expected to be present. Got %v", key, final)
		}
	}
	for _, key := range []string{"2693", "1f43b"} {
		if _, ok := final[key]; ok {
			t.Errorf("Failed batch entry %s expected to be absent. Got %v", key, final)
		}
	}

	if !strings.Contains(logged.String(), "batch 0 failed") {
		t.Errorf("Failing batch expected to be logged as a warning. Got %q", logged.String())
	}
}

func TestRun_SkipFetchWithoutSource(t *testing.T) {
	root := t.TempDir()
	cfg := &Config{
		SourceDir: filepath.Join(root, "missing"),
		OutDir:    filepath.Join(root, "out"),
		BatchSize: DefaultBatchSize,
		Quality:   DefaultQuality,
		SkipFetch: true,
	}

	// A pre-existing output tree must survive the aborted run untouched.
	marker := filepath.Join(cfg.TrimmedDir(), "1f44d.webp")
	if err := os.MkdirAll(cfg.TrimmedDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(marker, []byte("webp"), 0644); err != nil {
		t.Fatal(err)
	}

	b := &Builder{Config: cfg}
	if _, err := b.Run(); err == nil {
		t.Fatalf("Run expected to abort when the source tree is missing")
	}

	if _, err := os.Stat(marker); err != nil {
		t.Errorf("Aborted run expected to leave the output tree untouched: %v", err)
	}
}
