package stemmer

import (
	"bufio"
	"os"
	"strings"
)

type StopWords struct {
	words map[string]struct{}
}

func NewStopWords() *StopWords {
	sw := &StopWords{
		words: make(map[string]struct{}),
	}

	russianStops := []string{
		"и", "в", "во", "не", "что", "он", "на", "я", "с", "со",
		"как", "а", "то", "все", "она", "так", "его", "но", "да",
		"ты", "к", "у", "же", "вы", "за", "бы", "по", "только",
		"ее", "мне", "было", "вот", "от", "меня", "еще", "нет",
		"о", "из", "ему", "теперь", "когда", "даже", "ну", "вдруг",
		"ли", "если", "уже", "или", "ни", "быть", "был", "него",
		"до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там",
		"потом", "себя", "ничего", "ей", "может", "они", "тут",
		"где", "есть", "надо", "ней", "для", "мы", "тебя", "их",
		"чем", "была", "сам", "чтоб", "без", "будто", "чего", "раз",
		"тоже", "себе", "под", "будет", "ж", "тогда", "кто", "этот",
		"того", "потому", "этого", "какой", "совсем", "ним", "здесь",
		"этом", "один", "почти", "мой", "тем", "чтобы", "нее",
		"были", "куда", "зачем", "всех", "можно", "при", "об",
	}

	for _, word := range russianStops {
		sw.words[word] = struct{}{}
	}
	return sw
}

// AddFromFile merges extra stop words, one per line, into the set.
func (sw *StopWords) AddFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		sw.words[strings.ToLower(word)] = struct{}{}
	}
	return scanner.Err()
}

func (sw *StopWords) IsStopWord(word string) bool {
	_, exists := sw.words[strings.ToLower(word)]
	return exists
}
