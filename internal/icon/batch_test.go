package icon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateBatch_MultipleIcons(t *testing.T) {
	tmpDir := t.TempDir()

	opts := BatchOptions{
		OutputDir: tmpDir,
		Workers:   2,
		Quiet:     true,
		Icons: []BatchItem{
			{Options: Options{SeedText: "pokemon", Width: 32, Height: 32}, File: "ball.tga"},
			{Options: Options{SeedText: "budget calculator", Width: 32, Height: 32}},
			{Options: Options{SeedText: "zzz_unmatched_seed_123", Width: 32, Height: 32}, File: "plain.tga"},
		},
	}

	files, err := GenerateBatch(opts)
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(files))
	}

	// Results come back in batch order regardless of worker scheduling.
	wantNames := []string{"ball.tga", "icon_002.tga", "plain.tga"}
	wantThemes := []Theme{ThemePokemon, ThemeFinance, ThemeDefault}
	for i, f := range files {
		if filepath.Base(f.Path) != wantNames[i] {
			t.Errorf("File %d name = %s, want %s", i, filepath.Base(f.Path), wantNames[i])
		}
		if f.Theme != wantThemes[i] {
			t.Errorf("File %d theme = %s, want %s", i, f.Theme, wantThemes[i])
		}

		info, err := os.Stat(f.Path)
		if err != nil {
			t.Errorf("File %d not written: %v", i, err)
			continue
		}
		wantSize := int64(18 + 32*32*3)
		if info.Size() != wantSize {
			t.Errorf("File %d size = %d, want %d", i, info.Size(), wantSize)
		}
	}
}

func TestGenerateBatch_CreatesOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "nested", "icons")

	opts := BatchOptions{
		OutputDir: outDir,
		Quiet:     true,
		Icons: []BatchItem{
			{Options: Options{SeedText: "web portal", Width: 16, Height: 16}},
		},
	}

	if _, err := GenerateBatch(opts); err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "icon_001.tga")); err != nil {
		t.Errorf("Expected icon in created directory: %v", err)
	}
}

func TestGenerateBatch_MissingSeedText(t *testing.T) {
	opts := BatchOptions{
		OutputDir: t.TempDir(),
		Quiet:     true,
		Icons: []BatchItem{
			{Options: Options{SeedText: "ok", Width: 16, Height: 16}},
			{Options: Options{Width: 16, Height: 16}},
		},
	}

	if _, err := GenerateBatch(opts); err == nil {
		t.Error("Expected error for missing seed text, got nil")
	}
}

func TestGenerateBatch_EmptyBatch(t *testing.T) {
	if _, err := GenerateBatch(BatchOptions{OutputDir: t.TempDir(), Quiet: true}); err == nil {
		t.Error("Expected error for empty batch, got nil")
	}
}

func TestGenerateBatch_ProgressCallback(t *testing.T) {
	var calls []int
	opts := BatchOptions{
		OutputDir: t.TempDir(),
		Workers:   1,
		Quiet:     true,
		ProgressCallback: func(current, total int) {
			if total != 2 {
				t.Errorf("Callback total = %d, want 2", total)
			}
			calls = append(calls, current)
		},
		Icons: []BatchItem{
			{Options: Options{SeedText: "first", Width: 16, Height: 16}},
			{Options: Options{SeedText: "second", Width: 16, Height: 16}},
		},
	}

	if _, err := GenerateBatch(opts); err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}

	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("Progress calls = %v, want [1 2]", calls)
	}
}

func TestGenerateBatch_InvalidTheme(t *testing.T) {
	opts := BatchOptions{
		OutputDir: t.TempDir(),
		Quiet:     true,
		Icons: []BatchItem{
			{Options: Options{SeedText: "x", Theme: "nope", Width: 16, Height: 16}},
		},
	}

	if _, err := GenerateBatch(opts); err == nil {
		t.Error("Expected error for invalid theme, got nil")
	}
}
