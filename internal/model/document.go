package model

// Document is one training or test sample. Category is empty for test
// documents until the classifier assigns one.
type Document struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Vocabulary holds the stem sets built from the training corpus,
// keyed by category.
type Vocabulary map[string]map[string]struct{}

func NewVocabulary(categories []string) Vocabulary {
	voc := make(Vocabulary, len(categories))
	for _, category := range categories {
		voc[category] = make(map[string]struct{})
	}
	return voc
}

func (v Vocabulary) Add(category, stem string) {
	if set, ok := v[category]; ok {
		set[stem] = struct{}{}
	}
}

func (v Vocabulary) Contains(category, stem string) bool {
	_, ok := v[category][stem]
	return ok
}
