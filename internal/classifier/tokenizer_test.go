package classifier

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testVocab lists one token per line; line number is the token ID.
var testVocab = []string{
	"[PAD]", "[UNK]", "[CLS]", "[SEP]",
	"feeling", "empty", "to", "##day",
	"promoted", "got", ",", ".", "so",
}

func writeVocab(t *testing.T, tokens []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(strings.Join(tokens, "\n")+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestTokenizer(t *testing.T) *tokenizer {
	t.Helper()
	tok, err := newTokenizer(writeVocab(t, testVocab))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestNewTokenizerSpecialTokens(t *testing.T) {
	tok := newTestTokenizer(t)
	if tok.padID != 0 || tok.unkID != 1 || tok.clsID != 2 || tok.sepID != 3 {
		t.Errorf("special IDs = %d %d %d %d, want 0 1 2 3",
			tok.padID, tok.unkID, tok.clsID, tok.sepID)
	}
}

func TestNewTokenizerMissingSpecialToken(t *testing.T) {
	path := writeVocab(t, []string{"[PAD]", "[UNK]", "[CLS]"}) // no [SEP]
	if _, err := newTokenizer(path); err == nil {
		t.Fatal("accepted a vocab without [SEP]")
	}
}

func TestNewTokenizerEmptyVocab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := newTokenizer(path); err == nil {
		t.Fatal("accepted an empty vocab")
	}
}

func TestEncodeFraming(t *testing.T) {
	tok := newTestTokenizer(t)
	ids, mask, n := tok.encode("feeling empty")

	if n != 4 {
		t.Fatalf("seqLen = %d, want 4 ([CLS] feeling empty [SEP])", n)
	}
	wantIDs := []int64{2, 4, 5, 3}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	for i, m := range mask {
		if m != 1 {
			t.Errorf("mask[%d] = %d, want 1 (no padding)", i, m)
		}
	}
}

func TestEncodeUnknownToken(t *testing.T) {
	tok := newTestTokenizer(t)
	ids, _, n := tok.encode("xyzzy")
	if n != 3 {
		t.Fatalf("seqLen = %d, want 3", n)
	}
	if ids[1] != tok.unkID {
		t.Errorf("ids[1] = %d, want [UNK] %d", ids[1], tok.unkID)
	}
}

func TestWordpieceSubwords(t *testing.T) {
	tok := newTestTokenizer(t)
	got := tok.wordpiece([]string{"today"})
	want := []string{"to", "##day"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wordpiece mismatch (-want +got):\n%s", diff)
	}
}

func TestWordpieceUndecomposable(t *testing.T) {
	tok := newTestTokenizer(t)
	got := tok.wordpiece([]string{"qqq"})
	if len(got) != 1 || got[0] != "[UNK]" {
		t.Errorf("wordpiece = %v, want [UNK]", got)
	}
}

func TestBasicTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Got promoted, today.", []string{"got", "promoted", ",", "today", "."}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"Café naïve", []string{"cafe", "naive"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := basicTokenize(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("basicTokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestStripAccents(t *testing.T) {
	if got := stripAccents("café"); got != "cafe" {
		t.Errorf("stripAccents = %q, want cafe", got)
	}
	if got := stripAccents("plain"); got != "plain" {
		t.Errorf("stripAccents = %q, want plain", got)
	}
}

func TestEncodeTruncatesLongInput(t *testing.T) {
	tok := newTestTokenizer(t)
	long := strings.Repeat("empty ", maxSeqLen*2)
	_, _, n := tok.encode(long)
	if n > maxSeqLen {
		t.Errorf("seqLen = %d, want <= %d", n, maxSeqLen)
	}
}
