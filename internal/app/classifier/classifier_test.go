package classifier

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkozyrev/rubric/internal/app/textHandling"
	"github.com/vkozyrev/rubric/internal/model"
	"github.com/vkozyrev/rubric/pkg/logger"
	"github.com/vkozyrev/rubric/pkg/stemmer"
	"github.com/vkozyrev/rubric/pkg/workerPool"
)

func newTestClassifier(categories []string, voc model.Vocabulary, log *logger.Logger) *Classifier {
	tk := textHandling.NewTokenizer(stemmer.NewRussianStemmer(), stemmer.NewStopWords())
	return NewClassifier(tk, log, voc, categories)
}

func testVocabulary() model.Vocabulary {
	voc := model.NewVocabulary([]string{"science", "sport"})
	voc.Add("sport", "матч")
	voc.Add("sport", "команд")
	voc.Add("science", "учен")
	voc.Add("science", "опыт")
	return voc
}

func TestClassifyPicksBestOverlap(t *testing.T) {
	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()
	c := newTestClassifier([]string{"science", "sport"}, testVocabulary(), log)

	assert.Equal(t, "sport", c.Classify("Команда выиграла матч"))
	assert.Equal(t, "science", c.Classify("ученые поставили опыт"))
}

func TestClassifyTieGoesToFirstCategory(t *testing.T) {
	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()

	voc := model.NewVocabulary([]string{"science", "sport"})
	voc.Add("science", "матч")
	voc.Add("sport", "матч")
	c := newTestClassifier([]string{"science", "sport"}, voc, log)

	assert.Equal(t, "science", c.Classify("матч"))
}

func TestClassifyUnknownWordsFallBackToFirstCategory(t *testing.T) {
	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()
	c := newTestClassifier([]string{"science", "sport"}, testVocabulary(), log)

	assert.Equal(t, "science", c.Classify("аырлпખ"))
	assert.Equal(t, "science", c.Classify(""))
}

func TestClassifyFilePreservesInputOrder(t *testing.T) {
	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()
	c := newTestClassifier([]string{"science", "sport"}, testVocabulary(), log)

	dir := t.TempDir()
	testPath := filepath.Join(dir, "news_test.txt")
	outPath := filepath.Join(dir, "output.txt")
	content := "Команда выиграла матч\nУченые поставили опыт\nКоманда и матч\n"
	require.NoError(t, os.WriteFile(testPath, []byte(content), 0644))

	wp := workerPool.NewWorkerPool(4, 100, context.Background())
	defer wp.Stop()

	require.NoError(t, c.ClassifyFile(testPath, outPath, wp))

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"sport", "science", "sport"}, strings.Split(strings.TrimSpace(string(out)), "\n"))
}
