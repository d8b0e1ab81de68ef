package textHandling

import (
	"strings"

	"github.com/vkozyrev/rubric/pkg/stemmer"
	"golang.org/x/net/html"
)

type Tokenizer struct {
	stemmer   stemmer.Stemmer
	stopWords *stemmer.StopWords
}

func NewTokenizer(st stemmer.Stemmer, sw *stemmer.StopWords) *Tokenizer {
	return &Tokenizer{
		stemmer:   st,
		stopWords: sw,
	}
}

// Tokenize lowercases a document, strips markup and everything outside the
// latin/cyrillic alphabets and splits it into words with stop words removed.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.ContainsRune(text, '<') {
		text = ExtractText(text)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r == 'ё':
			sb.WriteRune('е')
		case r >= 'а' && r <= 'я', r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	words := strings.Fields(sb.String())
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if t.stopWords.IsStopWord(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// TokenizeAndStem returns the stem of every surviving word of a document.
func (t *Tokenizer) TokenizeAndStem(text string) []string {
	words := t.Tokenize(text)
	stems := make([]string, 0, len(words))
	for _, word := range words {
		stems = append(stems, t.stemmer.Stem(word))
	}
	return stems
}

var garbageTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
}

// ExtractText pulls the visible text out of an html fragment.
func ExtractText(htmlContent string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(htmlContent))
	var sb strings.Builder
	var garbageDepth int

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := garbageTags[string(name)]; ok {
				garbageDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := garbageTags[string(name)]; ok && garbageDepth > 0 {
				garbageDepth--
			}
		case html.TextToken:
			if garbageDepth > 0 {
				continue
			}
			sb.WriteString(string(tokenizer.Text()))
			sb.WriteByte(' ')
		}
	}
}
