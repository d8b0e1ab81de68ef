package configs

import (
	"encoding/json"
	"os"
)

type ConfigData struct {
	Categories    []string `json:"categories" validate:"required,len=1:50"`
	TrainPath     string   `json:"train_path" validate:"required"`
	TestPath      string   `json:"test_path" validate:"required"`
	OutputPath    string   `json:"output_path" validate:"required"`
	StopWordsPath string   `json:"stop_words_path"`
	IndexDir      string   `json:"index_dir" validate:"required"`
	WorkersCount  int      `json:"worker_count" validate:"min=1,max=256"`
	TasksCount    int      `json:"task_count" validate:"min=1,max=100000"`
}

func (cfg *ConfigData) Validate() error {
	return New("validate").Validate(*cfg)
}

func UploadLocalConfiguration(fileName string) (*ConfigData, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg ConfigData
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
