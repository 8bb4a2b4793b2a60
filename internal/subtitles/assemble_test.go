package subtitles

import "testing"

func TestAssembleParagraphsGroupsByColor(t *testing.T) {
	fragments := []Fragment{
		{Color: "#ffffff", Text: "Hallo daar."},
		{Color: "#ffffff", Text: "Hoe gaat het?"},
		{Color: "#ff0000", Text: "Goed, dank je."},
		{Color: NoColor, Text: "Zonder kleur."},
		{Color: "#ff0000", Text: "Weer rood."},
	}
	got := AssembleParagraphs(fragments)
	want := []string{
		"Hallo daar. Hoe gaat het?",
		"Goed, dank je.",
		"Zonder kleur.",
		"Weer rood.",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssembleParagraphsEmptyInput(t *testing.T) {
	if got := AssembleParagraphs(nil); len(got) != 0 {
		t.Fatalf("expected no paragraphs, got %v", got)
	}
}

func TestAssembleParagraphsSingleColor(t *testing.T) {
	fragments := []Fragment{
		{Color: NoColor, Text: "Een."},
		{Color: NoColor, Text: "Twee."},
		{Color: NoColor, Text: "Drie."},
	}
	got := AssembleParagraphs(fragments)
	if len(got) != 1 {
		t.Fatalf("expected one paragraph, got %v", got)
	}
	if got[0] != "Een. Twee. Drie." {
		t.Fatalf("unexpected paragraph: %q", got[0])
	}
}

func TestAssembleParagraphsAlternatingColorsNeverMerge(t *testing.T) {
	fragments := []Fragment{
		{Color: "#ffffff", Text: "wit"},
		{Color: "#ff0000", Text: "rood"},
		{Color: "#ffffff", Text: "wit"},
		{Color: "#ff0000", Text: "rood"},
	}
	got := AssembleParagraphs(fragments)
	if len(got) != len(fragments) {
		t.Fatalf("expected %d paragraphs for alternating colors, got %v", len(fragments), got)
	}
}
