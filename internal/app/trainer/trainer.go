package trainer

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/vkozyrev/rubric/internal/app/textHandling"
	"github.com/vkozyrev/rubric/internal/model"
	"github.com/vkozyrev/rubric/pkg/logger"
	"github.com/vkozyrev/rubric/pkg/workerPool"
)

type repository interface {
	SaveVocabulary(string, map[string]struct{}) error
	SaveCategories([]string) error
}

type Trainer struct {
	tokenizer  *textHandling.Tokenizer
	repository repository
	logger     *logger.Logger
	mu         *sync.Mutex
	categories []string
}

func NewTrainer(tk *textHandling.Tokenizer, repo repository, log *logger.Logger, categories []string) *Trainer {
	return &Trainer{
		tokenizer:  tk,
		repository: repo,
		logger:     log,
		mu:         new(sync.Mutex),
		categories: categories,
	}
}

// Train builds per-category stem sets from a training file where every line
// is "category<TAB>document text". Lines are stemmed on the worker pool and
// the finished vocabulary is persisted through the repository.
func (t *Trainer) Train(path string, wp *workerPool.WorkerPool) (model.Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	voc := model.NewVocabulary(t.categories)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		wp.Submit(func() {
			t.handleLine(line, voc)
		})
	}
	wp.Wait()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := t.repository.SaveCategories(t.categories); err != nil {
		return nil, err
	}
	for _, category := range t.categories {
		if err := t.repository.SaveVocabulary(category, voc[category]); err != nil {
			return nil, err
		}
	}

	return voc, nil
}

func (t *Trainer) handleLine(line string, voc model.Vocabulary) {
	category, text, found := strings.Cut(line, "\t")
	if !found {
		t.logger.Write(logger.NewMessage(logger.TRAINER_LAYER, logger.DEBUG, "skipping line without a category tab"))
		return
	}
	if _, ok := voc[category]; !ok {
		t.logger.Write(logger.NewMessage(logger.TRAINER_LAYER, logger.DEBUG, "skipping unknown category: %s", category))
		return
	}

	stems := t.tokenizer.TokenizeAndStem(text)

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, stem := range stems {
		voc.Add(category, stem)
	}
}
