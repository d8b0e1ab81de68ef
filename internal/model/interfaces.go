package model

// Repository persists trained vocabularies between runs.
type Repository interface {
	SaveVocabulary(category string, stems map[string]struct{}) error
	LoadVocabulary(category string) (map[string]struct{}, error)

	SaveCategories([]string) error
	LoadCategories() ([]string, error)
}

type Stemmer interface {
	Stem(string) string
}

type StopWords interface {
	IsStopWord(string) bool
}
