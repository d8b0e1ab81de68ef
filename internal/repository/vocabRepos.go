package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/vkozyrev/rubric/pkg/logger"
)

const (
	VocabKeyFormat = "vocab:%s:%s"
	CategoriesKey  = "categories:"
)

type VocabRepository struct {
	DB  *badger.DB
	log *logger.Logger
	mu  *sync.Mutex
}

func NewVocabRepository(db *badger.DB, log *logger.Logger) *VocabRepository {
	return &VocabRepository{
		DB:  db,
		log: log,
		mu:  new(sync.Mutex),
	}
}

func (vr *VocabRepository) SaveVocabulary(category string, stems map[string]struct{}) error {
	wb := vr.DB.NewWriteBatch()
	defer wb.Cancel()

	vr.mu.Lock()
	defer vr.mu.Unlock()

	const maxStemsInTXN = 1000
	itNum := 0

	for stem := range stems {
		key := fmt.Appendf(nil, VocabKeyFormat, category, stem)
		if err := wb.Set(key, nil); err != nil {
			return err
		}
		itNum++

		if itNum >= maxStemsInTXN {
			if err := wb.Flush(); err != nil {
				return err
			}
			itNum = 0
		}
	}
	vr.log.Write(logger.NewMessage(logger.REPOSITORY_LAYER, logger.INFO, "saved %d stems for category %s", len(stems), category))
	return wb.Flush()
}

func (vr *VocabRepository) LoadVocabulary(category string) (map[string]struct{}, error) {
	stems := make(map[string]struct{})
	prefix := fmt.Appendf(nil, "vocab:%s:", category)

	return stems, vr.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			stems[strings.TrimPrefix(key, string(prefix))] = struct{}{}
		}
		return nil
	})
}

func (vr *VocabRepository) SaveCategories(categories []string) error {
	return vr.DB.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(categories)
		if err != nil {
			return err
		}
		return txn.Set([]byte(CategoriesKey), data)
	})
}

func (vr *VocabRepository) LoadCategories() ([]string, error) {
	out := []string{}
	return out, vr.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(CategoriesKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(val, &out)
	})
}
