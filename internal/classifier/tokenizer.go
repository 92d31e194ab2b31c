package classifier

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSeqLen = 256

// tokenizer performs BERT-style WordPiece tokenization against a vocab.txt
// vocabulary (one token per line, line number = token ID).
type tokenizer struct {
	tokenToID map[string]int64

	padID int64
	unkID int64
	clsID int64
	sepID int64
}

func newTokenizer(vocabPath string) (*tokenizer, error) {
	f, err := os.Open(vocabPath)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: %w", err)
	}
	defer f.Close()

	tokenToID := make(map[string]int64, 32000)
	var count int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokenToID[scanner.Text()] = count
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tokenizer: read vocab: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("tokenizer: empty vocab file %s", vocabPath)
	}

	t := &tokenizer{tokenToID: tokenToID}
	for _, s := range []struct {
		name string
		dest *int64
	}{
		{"[PAD]", &t.padID},
		{"[UNK]", &t.unkID},
		{"[CLS]", &t.clsID},
		{"[SEP]", &t.sepID},
	} {
		id, ok := tokenToID[s.name]
		if !ok {
			return nil, fmt.Errorf("tokenizer: vocab missing special token %s", s.name)
		}
		*s.dest = id
	}
	return t, nil
}

// encode converts text into padded token IDs and an attention mask, both of
// length seqLen, with [CLS] and [SEP] framing.
func (t *tokenizer) encode(text string) (inputIDs, attentionMask []int64, seqLen int64) {
	tokens := t.wordpiece(basicTokenize(text))
	if len(tokens) > maxSeqLen-2 {
		tokens = tokens[:maxSeqLen-2]
	}

	n := int64(len(tokens) + 2)
	ids := make([]int64, n)
	mask := make([]int64, n)

	ids[0] = t.clsID
	mask[0] = 1
	for i, tok := range tokens {
		id, ok := t.tokenToID[tok]
		if !ok {
			id = t.unkID
		}
		ids[i+1] = id
		mask[i+1] = 1
	}
	ids[n-1] = t.sepID
	mask[n-1] = 1

	return ids, mask, n
}

// wordpiece decomposes basic tokens into vocabulary subwords, longest match
// first; an undecomposable token becomes [UNK].
func (t *tokenizer) wordpiece(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) == 0 {
			continue
		}
		if len(runes) > 100 {
			out = append(out, "[UNK]")
			continue
		}

		var subs []string
		start := 0
		ok := true
		for start < len(runes) {
			end := len(runes)
			matched := false
			for end > start {
				sub := string(runes[start:end])
				if start > 0 {
					sub = "##" + sub
				}
				if _, found := t.tokenToID[sub]; found {
					subs = append(subs, sub)
					matched = true
					break
				}
				end--
			}
			if !matched {
				ok = false
				break
			}
			start = end
		}
		if !ok {
			out = append(out, "[UNK]")
			continue
		}
		out = append(out, subs...)
	}
	return out
}

// basicTokenize lowercases, strips accents, and splits on whitespace and
// punctuation, keeping punctuation as standalone tokens.
func basicTokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r == 0 || r == 0xFFFD || (unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
	cleaned = strings.ToLower(cleaned)
	cleaned = stripAccents(cleaned)

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		var current strings.Builder
		for _, r := range word {
			if isPunct(r) {
				if current.Len() > 0 {
					tokens = append(tokens, current.String())
					current.Reset()
				}
				tokens = append(tokens, string(r))
				continue
			}
			current.WriteRune(r)
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
		}
	}
	return tokens
}

// stripAccents drops combining marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPunct(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
