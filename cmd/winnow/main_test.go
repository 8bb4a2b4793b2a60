package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"winnow/internal/errkind"
	"winnow/internal/testsupport"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:02,500
<font color="#00ff00">Hello there.</font>

2
00:00:03,000 --> 00:00:04,000
<font color="#00ff00">How are you?</font>
`

const sampleText = `# Winterreis

De koggen voeren uit
bij dageraad.

3 De Hanzevaart

Handel bracht welvaart
naar de steden.
`

func TestCLISRTCleansFile(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "sample.srt")
	testsupport.WriteFile(t, input, sampleSRT)

	out, _, err := runCLI(t, []string{"srt", input}, env.configPath)
	if err != nil {
		t.Fatalf("srt: %v", err)
	}
	requireContains(t, out, "Cleaned subtitles:")
	requireContains(t, out, "paragraphs: 1")

	got := testsupport.ReadFile(t, filepath.Join(env.baseDir, "sample_clean.txt"))
	if got != "Hello there. How are you?\n" {
		t.Fatalf("unexpected cleaned output: %q", got)
	}
}

func TestCLISRTExplicitOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "sample.srt")
	target := filepath.Join(env.baseDir, "dialogue.txt")
	testsupport.WriteFile(t, input, sampleSRT)

	out, _, err := runCLI(t, []string{"srt", input, target}, env.configPath)
	if err != nil {
		t.Fatalf("srt with output: %v", err)
	}
	requireContains(t, out, target)

	got := testsupport.ReadFile(t, target)
	if got != "Hello there. How are you?\n" {
		t.Fatalf("unexpected cleaned output: %q", got)
	}
}

func TestCLISRTJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "sample.srt")
	testsupport.WriteFile(t, input, sampleSRT)

	out, _, err := runCLI(t, []string{"srt", input, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("srt --json: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected pure JSON output, got %q", out)
	}

	var result cleanResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Input != input {
		t.Fatalf("result.Input = %q, want %q", result.Input, input)
	}
	if want := filepath.Join(env.baseDir, "sample_clean.txt"); result.Output != want {
		t.Fatalf("result.Output = %q, want %q", result.Output, want)
	}
	if result.Stats.LinesRead != 7 || result.Stats.Sequences != 2 || result.Stats.Timestamps != 2 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if result.Stats.Fragments != 2 || result.Stats.Paragraphs != 1 {
		t.Fatalf("unexpected assembly stats: %+v", result.Stats)
	}

	if _, err := os.Stat(result.Output); err != nil {
		t.Fatalf("expected output file at %s: %v", result.Output, err)
	}
}

func TestCLISRTSummaryTable(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "sample.srt")
	testsupport.WriteFile(t, input, sampleSRT)

	out, _, err := runCLI(t, []string{"srt", input, "--summary"}, env.configPath)
	if err != nil {
		t.Fatalf("srt --summary: %v", err)
	}
	requireContains(t, out, "== Cleaning summary ==")
	requireContains(t, out, "Lines read")
	requireContains(t, out, "Sound cues")
	requireContains(t, out, "Paragraphs")
}

func TestCLISRTMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "absent.srt")

	_, _, err := runCLI(t, []string{"srt", input}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, errkind.ErrInput) {
		t.Fatalf("expected input error marker, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(env.baseDir, "absent_clean.txt")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("no output file should be written on read failure, stat err: %v", statErr)
	}
}

func TestCLISRTUnwritableOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "sample.srt")
	target := filepath.Join(env.baseDir, "missing-dir", "out.txt")
	testsupport.WriteFile(t, input, sampleSRT)

	_, _, err := runCLI(t, []string{"srt", input, target}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unwritable output")
	}
	if !errors.Is(err, errkind.ErrOutput) {
		t.Fatalf("expected output error marker, got %v", err)
	}
}

func TestCLISRTMissingArgs(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"srt"}, env.configPath)
	if err == nil {
		t.Fatal("expected usage error")
	}
	requireContains(t, err.Error(), "provide the subtitle file to clean")
}

func TestCLISRTLexiconExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t, testsupport.WithExtraPhrases("studio babelfish"))
	cfg.Logging.Level = "error"
	configPath := testsupport.WriteConfig(t, filepath.Join(env.baseDir, "custom"), cfg)

	input := filepath.Join(env.baseDir, "branded.srt")
	testsupport.WriteFile(t, input, `1
00:00:01,000 --> 00:00:02,000
Studio Babelfish

2
00:00:03,000 --> 00:00:04,000
Echte dialoog.
`)

	_, _, err := runCLI(t, []string{"srt", input}, configPath)
	if err != nil {
		t.Fatalf("srt with lexicon extension: %v", err)
	}

	got := testsupport.ReadFile(t, filepath.Join(env.baseDir, "branded_clean.txt"))
	if got != "Echte dialoog.\n" {
		t.Fatalf("expected extra phrase to be dropped, got %q", got)
	}
}

func TestCLISRTWritesLogFile(t *testing.T) {
	env := setupCLITestEnv(t)
	logDir := filepath.Join(env.baseDir, "logs")
	cfg := testsupport.NewConfig(t, testsupport.WithLogDir(logDir))
	configPath := testsupport.WriteConfig(t, filepath.Join(env.baseDir, "logged"), cfg)

	input := filepath.Join(env.baseDir, "sample.srt")
	testsupport.WriteFile(t, input, sampleSRT)

	_, _, err := runCLI(t, []string{"srt", input}, configPath)
	if err != nil {
		t.Fatalf("srt with log dir: %v", err)
	}

	logged := testsupport.ReadFile(t, filepath.Join(logDir, "winnow.log"))
	requireContains(t, logged, "srt: cleaned subtitle file")
	requireContains(t, logged, "paragraphs=1")
	requireContains(t, logged, "run_id=")
}

func TestCLITextReflowsFile(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "notes.md")
	testsupport.WriteFile(t, input, sampleText)

	out, _, err := runCLI(t, []string{"text", input}, env.configPath)
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	requireContains(t, out, "Reflowed text:")

	got := testsupport.ReadFile(t, filepath.Join(env.baseDir, "notes_clean.md"))
	want := "# Winterreis\n\nDe koggen voeren uit bij dageraad.\n\n3 De Hanzevaart\n\nHandel bracht welvaart naar de steden.\n"
	if got != want {
		t.Fatalf("unexpected reflowed output:\ngot  %q\nwant %q", got, want)
	}
}

func TestCLITextJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "notes.md")
	testsupport.WriteFile(t, input, sampleText)

	out, _, err := runCLI(t, []string{"text", input, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("text --json: %v", err)
	}

	var result reflowResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Stats.LinesRead != 9 || result.Stats.Headings != 2 || result.Stats.BodyLines != 4 {
		t.Fatalf("unexpected stats: %+v", result.Stats)
	}
	if result.Stats.Paragraphs != 2 {
		t.Fatalf("unexpected paragraph count: %+v", result.Stats)
	}
}

func TestCLITextMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"text", filepath.Join(env.baseDir, "absent.md")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if !errors.Is(err, errkind.ErrInput) {
		t.Fatalf("expected input error marker, got %v", err)
	}
}

func TestCLIRootHelpListsCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, nil, env.configPath)
	if err != nil {
		t.Fatalf("root help: %v", err)
	}
	requireContains(t, out, "srt")
	requireContains(t, out, "text")
	requireContains(t, out, "config")
}

func TestCLIInvalidConfigRejected(t *testing.T) {
	env := setupCLITestEnv(t)
	badConfig := filepath.Join(env.baseDir, "bad.toml")
	testsupport.WriteFile(t, badConfig, "[logging]\nlevel = \"verbose\"\n")

	input := filepath.Join(env.baseDir, "sample.srt")
	testsupport.WriteFile(t, input, sampleSRT)

	_, _, err := runCLI(t, []string{"srt", input}, badConfig)
	if err == nil {
		t.Fatal("expected config validation error")
	}
	requireContains(t, err.Error(), "logging.level")
}
