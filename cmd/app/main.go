package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v3"
	"github.com/joho/godotenv"

	"github.com/vkozyrev/rubric/configs"
	"github.com/vkozyrev/rubric/internal/app/classifier"
	"github.com/vkozyrev/rubric/internal/app/textHandling"
	"github.com/vkozyrev/rubric/internal/app/trainer"
	"github.com/vkozyrev/rubric/internal/model"
	"github.com/vkozyrev/rubric/internal/repository"
	"github.com/vkozyrev/rubric/pkg/logger"
	"github.com/vkozyrev/rubric/pkg/stemmer"
	"github.com/vkozyrev/rubric/pkg/workerPool"
)

func main() {
	var (
		configFile = flag.String("config", "configs/classify_config.json", "Path to configuration file")
		train      = flag.Bool("train", false, "Rebuild the vocabulary from the training file")
		classify   = flag.Bool("classify", false, "Classify the test file and write predictions")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("error loading .env: %v", err)
	}

	cfg, err := configs.UploadLocalConfiguration(*configFile)
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	indexDir := cfg.IndexDir
	if dir := os.Getenv("RUBRIC_INDEX_DIR"); dir != "" {
		indexDir = dir
	}

	db, err := badger.Open(badger.DefaultOptions(indexDir).WithLoggingLevel(badger.WARNING))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	al := logger.NewLogger(os.Stdout, os.Stderr, 1000)
	defer al.Close()

	repo := repository.NewVocabRepository(db, al)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("Shutting down...")
		cancel()
	}()

	sw := stemmer.NewStopWords()
	if cfg.StopWordsPath != "" {
		if err := sw.AddFromFile(cfg.StopWordsPath); err != nil {
			al.Write(logger.NewMessage(logger.MAIN_LAYER, logger.ERROR, "error loading stop words: %v", err))
		}
	}
	tk := textHandling.NewTokenizer(stemmer.NewRussianStemmer(), sw)

	wp := workerPool.NewWorkerPool(cfg.WorkersCount, cfg.TasksCount, ctx)
	defer wp.Stop()

	var voc model.Vocabulary
	if *train {
		tr := trainer.NewTrainer(tk, repo, al, cfg.Categories)
		voc, err = tr.Train(cfg.TrainPath, wp)
		if err != nil {
			panic(err)
		}
		al.Write(logger.NewMessage(logger.MAIN_LAYER, logger.INFO, "trained vocabulary for %d categories", len(cfg.Categories)))
	}

	if *classify {
		categories := cfg.Categories
		if voc == nil {
			categories, voc, err = loadVocabulary(repo, cfg.Categories)
			if err != nil {
				panic(err)
			}
		}
		c := classifier.NewClassifier(tk, al, voc, categories)
		if err := c.ClassifyFile(cfg.TestPath, cfg.OutputPath, wp); err != nil {
			panic(err)
		}
	}
}

// loadVocabulary restores a previously trained vocabulary. The stored
// category order takes precedence because it fixes tie-breaking.
func loadVocabulary(repo model.Repository, fallback []string) ([]string, model.Vocabulary, error) {
	categories, err := repo.LoadCategories()
	if err != nil {
		return nil, nil, err
	}
	if len(categories) == 0 {
		categories = fallback
	}

	voc := make(model.Vocabulary, len(categories))
	for _, category := range categories {
		set, err := repo.LoadVocabulary(category)
		if err != nil {
			return nil, nil, err
		}
		voc[category] = set
	}
	return categories, voc, nil
}
