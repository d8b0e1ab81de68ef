package textHandling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vkozyrev/rubric/pkg/stemmer"
)

func newTestTokenizer() *Tokenizer {
	return NewTokenizer(stemmer.NewRussianStemmer(), stemmer.NewStopWords())
}

func TestTokenizeStripsPunctuationAndDigits(t *testing.T) {
	tk := newTestTokenizer()
	tokens := tk.Tokenize("Привет, мир! 2024 год.")
	assert.Equal(t, []string{"привет", "мир", "год"}, tokens)
}

func TestTokenizeDropsStopWords(t *testing.T) {
	tk := newTestTokenizer()
	tokens := tk.Tokenize("он вышел на лед")
	assert.Equal(t, []string{"вышел", "лед"}, tokens)
}

func TestTokenizeFoldsYo(t *testing.T) {
	tk := newTestTokenizer()
	assert.Equal(t, []string{"елка"}, tk.Tokenize("ёлка"))
}

func TestTokenizeEmpty(t *testing.T) {
	tk := newTestTokenizer()
	assert.Empty(t, tk.Tokenize(""))
	assert.Empty(t, tk.Tokenize("!!! ... 123"))
}

func TestTokenizeHTML(t *testing.T) {
	tk := newTestTokenizer()
	tokens := tk.Tokenize("<p>Новости <b>спорта</b></p><script>var x = 1;</script>")
	assert.Equal(t, []string{"новости", "спорта"}, tokens)
}

func TestTokenizeAndStem(t *testing.T) {
	tk := newTestTokenizer()
	stems := tk.TokenizeAndStem("свежие газеты")
	assert.Equal(t, []string{"свеж", "газет"}, stems)
}
