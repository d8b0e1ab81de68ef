package trainer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkozyrev/rubric/internal/app/textHandling"
	"github.com/vkozyrev/rubric/pkg/logger"
	"github.com/vkozyrev/rubric/pkg/stemmer"
	"github.com/vkozyrev/rubric/pkg/workerPool"
)

type fakeRepository struct {
	saved      map[string]map[string]struct{}
	categories []string
}

func (f *fakeRepository) SaveVocabulary(category string, stems map[string]struct{}) error {
	f.saved[category] = stems
	return nil
}

func (f *fakeRepository) SaveCategories(categories []string) error {
	f.categories = categories
	return nil
}

func TestTrainBuildsPerCategoryStemSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news_train.txt")
	content := "sport\tКоманда выиграла матч\n" +
		"science\tУченые провели опыт\n" +
		"weather\tЗавтра дождь\n" +
		"line without tab\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()

	tk := textHandling.NewTokenizer(stemmer.NewRussianStemmer(), stemmer.NewStopWords())
	repo := &fakeRepository{saved: map[string]map[string]struct{}{}}
	tr := NewTrainer(tk, repo, log, []string{"sport", "science"})

	wp := workerPool.NewWorkerPool(4, 100, context.Background())
	defer wp.Stop()

	voc, err := tr.Train(path, wp)
	require.NoError(t, err)

	assert.Contains(t, voc["sport"], "команд")
	assert.Contains(t, voc["sport"], "выигра")
	assert.Contains(t, voc["sport"], "матч")
	assert.Contains(t, voc["science"], "учен")
	assert.NotContains(t, voc, "weather")

	assert.Equal(t, []string{"sport", "science"}, repo.categories)
	assert.Equal(t, voc["sport"], repo.saved["sport"])
	assert.Equal(t, voc["science"], repo.saved["science"])
}

func TestTrainMissingFile(t *testing.T) {
	log := logger.NewLogger(io.Discard, io.Discard, 100)
	defer log.Close()

	tk := textHandling.NewTokenizer(stemmer.NewRussianStemmer(), stemmer.NewStopWords())
	tr := NewTrainer(tk, &fakeRepository{saved: map[string]map[string]struct{}{}}, log, []string{"sport"})

	wp := workerPool.NewWorkerPool(1, 10, context.Background())
	defer wp.Stop()

	_, err := tr.Train(filepath.Join(t.TempDir(), "missing.txt"), wp)
	assert.Error(t, err)
}
