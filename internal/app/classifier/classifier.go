package classifier

import (
	"bufio"
	"os"

	"github.com/vkozyrev/rubric/internal/app/textHandling"
	"github.com/vkozyrev/rubric/internal/model"
	"github.com/vkozyrev/rubric/pkg/logger"
	"github.com/vkozyrev/rubric/pkg/workerPool"
)

type Classifier struct {
	tokenizer  *textHandling.Tokenizer
	logger     *logger.Logger
	voc        model.Vocabulary
	categories []string
}

func NewClassifier(tk *textHandling.Tokenizer, log *logger.Logger, voc model.Vocabulary, categories []string) *Classifier {
	return &Classifier{
		tokenizer:  tk,
		logger:     log,
		voc:        voc,
		categories: categories,
	}
}

// Classify picks the category whose vocabulary shares the most stems with
// the document. Ties go to the category listed first, so a document with no
// known stems falls back to the first category.
func (c *Classifier) Classify(text string) string {
	if len(c.categories) == 0 {
		return ""
	}

	stems := c.tokenizer.TokenizeAndStem(text)

	maximum, best := -1, ""
	for _, category := range c.categories {
		score := 0
		for _, stem := range stems {
			if c.voc.Contains(category, stem) {
				score++
			}
		}
		if score > maximum {
			maximum = score
			best = category
		}
	}
	return best
}

// ClassifyFile scores every line of the test file on the worker pool and
// writes one predicted category per line, in input order.
func (c *Classifier) ClassifyFile(testPath, outPath string, wp *workerPool.WorkerPool) error {
	file, err := os.Open(testPath)
	if err != nil {
		return err
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	predicted := make([]string, len(lines))
	for i, line := range lines {
		i, line := i, line
		wp.Submit(func() {
			predicted[i] = c.Classify(line)
		})
	}
	wp.Wait()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	for _, category := range predicted {
		if _, err := writer.WriteString(category + "\n"); err != nil {
			return err
		}
	}
	c.logger.Write(logger.NewMessage(logger.CLASSIFIER_LAYER, logger.INFO, "classified %d documents", len(lines)))
	return writer.Flush()
}
