package stemmer

type Stemmer interface {
	Stem(string) string
}

const vowels = "аеиоуыэюя"

// suffix is one ending alternative. When ignore is non-empty, the rune right
// before the ending must belong to that class for the alternative to match,
// and that rune is kept on the stem.
type suffix struct {
	ending []rune
	ignore string
}

// rule alternatives are ordered by total matched length, longest first, so a
// shorter ending that is a tail of a longer one never steals the match.
type rule []suffix

type RussianStemmer struct {
	perfectiveGerund rule
	reflexive        rule
	adjective        rule
	participle       rule
	verb             rule
	noun             rule
	superlative      rule
	derivational     rule
	trailingI        rule
	softSign         rule
}

func NewRussianStemmer() *RussianStemmer {
	return &RussianStemmer{
		perfectiveGerund: rule{
			{ending: []rune("вшись"), ignore: "ая"},
			{ending: []rune("ившись")},
			{ending: []rune("ывшись")},
			{ending: []rune("вши"), ignore: "ая"},
			{ending: []rune("ивши")},
			{ending: []rune("ывши")},
			{ending: []rune("в"), ignore: "ая"},
			{ending: []rune("ив")},
			{ending: []rune("ыв")},
		},
		reflexive: rule{
			{ending: []rune("ся")},
			{ending: []rune("сь")},
		},
		adjective: rule{
			{ending: []rune("ими")},
			{ending: []rune("ыми")},
			{ending: []rune("его")},
			{ending: []rune("ого")},
			{ending: []rune("ему")},
			{ending: []rune("ому")},
			{ending: []rune("ее")},
			{ending: []rune("ие")},
			{ending: []rune("ые")},
			{ending: []rune("ое")},
			{ending: []rune("ей")},
			{ending: []rune("ий")},
			{ending: []rune("ый")},
			{ending: []rune("ой")},
			{ending: []rune("ем")},
			{ending: []rune("им")},
			{ending: []rune("ым")},
			{ending: []rune("ом")},
			{ending: []rune("их")},
			{ending: []rune("ых")},
			{ending: []rune("ую")},
			{ending: []rune("юю")},
			{ending: []rune("ая")},
			{ending: []rune("яя")},
			{ending: []rune("ою")},
			{ending: []rune("ею")},
		},
		participle: rule{
			{ending: []rune("ем"), ignore: "ая"},
			{ending: []rune("нн"), ignore: "ая"},
			{ending: []rune("вш"), ignore: "ая"},
			{ending: []rune("ющ"), ignore: "ая"},
			{ending: []rune("ивш")},
			{ending: []rune("ывш")},
			{ending: []rune("ующ")},
			{ending: []rune("щ"), ignore: "ая"},
		},
		verb: rule{
			{ending: []rune("ете"), ignore: "ая"},
			{ending: []rune("йте"), ignore: "ая"},
			{ending: []rune("ешь"), ignore: "ая"},
			{ending: []rune("нно"), ignore: "ая"},
			{ending: []rune("ейте")},
			{ending: []rune("уйте")},
			{ending: []rune("ла"), ignore: "ая"},
			{ending: []rune("на"), ignore: "ая"},
			{ending: []rune("ли"), ignore: "ая"},
			{ending: []rune("ем"), ignore: "ая"},
			{ending: []rune("ло"), ignore: "ая"},
			{ending: []rune("но"), ignore: "ая"},
			{ending: []rune("ет"), ignore: "ая"},
			{ending: []rune("ют"), ignore: "ая"},
			{ending: []rune("ны"), ignore: "ая"},
			{ending: []rune("ть"), ignore: "ая"},
			{ending: []rune("ила")},
			{ending: []rune("ыла")},
			{ending: []rune("ена")},
			{ending: []rune("ите")},
			{ending: []rune("или")},
			{ending: []rune("ыли")},
			{ending: []rune("ило")},
			{ending: []rune("ыло")},
			{ending: []rune("ено")},
			{ending: []rune("ует")},
			{ending: []rune("уют")},
			{ending: []rune("ены")},
			{ending: []rune("ить")},
			{ending: []rune("ыть")},
			{ending: []rune("ишь")},
			{ending: []rune("й"), ignore: "ая"},
			{ending: []rune("л"), ignore: "ая"},
			{ending: []rune("н"), ignore: "ая"},
			{ending: []rune("ей")},
			{ending: []rune("уй")},
			{ending: []rune("ил")},
			{ending: []rune("ыл")},
			{ending: []rune("им")},
			{ending: []rune("ым")},
			{ending: []rune("ен")},
			{ending: []rune("ят")},
			{ending: []rune("ит")},
			{ending: []rune("ыт")},
			{ending: []rune("ую")},
			{ending: []rune("ю")},
		},
		noun: rule{
			{ending: []rune("иями")},
			{ending: []rune("ями")},
			{ending: []rune("ами")},
			{ending: []rune("ией")},
			{ending: []rune("иям")},
			{ending: []rune("ием")},
			{ending: []rune("иях")},
			{ending: []rune("ев")},
			{ending: []rune("ов")},
			{ending: []rune("ие")},
			{ending: []rune("ье")},
			{ending: []rune("еи")},
			{ending: []rune("ии")},
			{ending: []rune("ей")},
			{ending: []rune("ой")},
			{ending: []rune("ий")},
			{ending: []rune("ям")},
			{ending: []rune("ем")},
			{ending: []rune("ам")},
			{ending: []rune("ом")},
			{ending: []rune("ах")},
			{ending: []rune("ях")},
			{ending: []rune("ию")},
			{ending: []rune("ью")},
			{ending: []rune("ия")},
			{ending: []rune("ья")},
			{ending: []rune("а")},
			{ending: []rune("е")},
			{ending: []rune("и")},
			{ending: []rune("й")},
			{ending: []rune("о")},
			{ending: []rune("у")},
			{ending: []rune("ы")},
			{ending: []rune("ь")},
			{ending: []rune("ю")},
			{ending: []rune("я")},
		},
		superlative: rule{
			{ending: []rune("ейше")},
			{ending: []rune("ейш")},
		},
		derivational: rule{
			{ending: []rune("ость")},
			{ending: []rune("ост")},
		},
		trailingI: rule{
			{ending: []rune("и")},
		},
		softSign: rule{
			{ending: []rune("ь")},
		},
	}
}

// Stem strips grammatical endings from a lowercase russian word.
// The result is always a prefix of the input.
func (s *RussianStemmer) Stem(word string) string {
	runes := []rune(word)
	rv, r2 := findRV(runes), findR2(runes)
	runes = s.step1(runes, rv)
	runes = s.step2(runes, rv)
	runes = s.step3(runes, r2)
	runes = s.step4(runes, rv)
	return string(runes)
}

func isVowel(r rune) bool {
	for _, v := range vowels {
		if r == v {
			return true
		}
	}
	return false
}

// findRV returns the position right after the first vowel,
// or the word length if the word has no vowels.
func findRV(word []rune) int {
	for i, r := range word {
		if isVowel(r) {
			return i + 1
		}
	}
	return len(word)
}

// findR2 returns the position after the second vowel-consonant pair.
func findR2(word []rune) int {
	r1 := scanVowelConsonant(word, 0)
	if r1 == -1 {
		return len(word)
	}
	r2 := scanVowelConsonant(word, r1)
	if r2 == -1 {
		return len(word)
	}
	return r2
}

func scanVowelConsonant(word []rune, from int) int {
	for i := from; i+1 < len(word); i++ {
		if isVowel(word[i]) && !isVowel(word[i+1]) {
			return i + 2
		}
	}
	return -1
}

func endsWith(word, ending []rune) bool {
	if len(ending) > len(word) {
		return false
	}
	offset := len(word) - len(ending)
	for i, r := range ending {
		if word[offset+i] != r {
			return false
		}
	}
	return true
}

func inClass(class string, r rune) bool {
	for _, c := range class {
		if r == c {
			return true
		}
	}
	return false
}

// cut removes the first matching ending that starts at or after minPos.
// For an alternative with an ignore class the class rune counts as part of
// the match for the position check, but stays on the stem.
func (s *RussianStemmer) cut(word []rune, r rule, minPos int) (bool, []rune) {
	for _, alt := range r {
		if !endsWith(word, alt.ending) {
			continue
		}
		start := len(word) - len(alt.ending)
		if alt.ignore != "" {
			if start-1 < minPos || !inClass(alt.ignore, word[start-1]) {
				continue
			}
			return true, word[:start]
		}
		if start < minPos {
			continue
		}
		return true, word[:start]
	}
	return false, word
}

// step1 removes a perfective gerund, or strips a reflexive ending and then
// exactly one of adjective (with a trailing participle), verb or noun.
func (s *RussianStemmer) step1(word []rune, rv int) []rune {
	if matched, cutWord := s.cut(word, s.perfectiveGerund, rv); matched {
		return cutWord
	}
	_, word = s.cut(word, s.reflexive, rv)
	if matched, cutWord := s.cut(word, s.adjective, rv); matched {
		_, cutWord = s.cut(cutWord, s.participle, rv)
		return cutWord
	}
	if matched, cutWord := s.cut(word, s.verb, rv); matched {
		return cutWord
	}
	_, word = s.cut(word, s.noun, rv)
	return word
}

func (s *RussianStemmer) step2(word []rune, rv int) []rune {
	_, word = s.cut(word, s.trailingI, rv)
	return word
}

// step3 is the only step gated at R2 instead of RV.
func (s *RussianStemmer) step3(word []rune, r2 int) []rune {
	_, word = s.cut(word, s.derivational, r2)
	return word
}

// step4 strips a superlative ending, then either collapses a doubled н
// or strips a trailing soft sign, never both.
func (s *RussianStemmer) step4(word []rune, rv int) []rune {
	_, word = s.cut(word, s.superlative, rv)
	if n := len(word); n >= 2 && n-1 >= rv && word[n-1] == 'н' && word[n-2] == 'н' {
		return word[:n-1]
	}
	_, word = s.cut(word, s.softSign, rv)
	return word
}
