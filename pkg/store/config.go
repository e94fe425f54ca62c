package store

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
	APIKey() string
	Model() string
	BaseURL() string
	SampleRate() int
}

func LoadConfig() (Config, error) {
	// A .env next to the binary is the easiest place for the API key.
	_ = godotenv.Load()

	viper.SetDefault("path", "~/.voiceos.db")
	viper.SetDefault("model", "gemini-3-flash-preview")
	viper.SetDefault("api_base", "")
	viper.SetDefault("sample_rate", 16000)
	viper.SetConfigName(".voiceos") // .yaml is implicit
	viper.SetEnvPrefix("VOICEOS")
	viper.AutomaticEnv()

	if override := os.Getenv("VOICEOS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = viper.GetString("api_key")
	}

	return &fileConfig{
		Path:    path,
		Key:     key,
		ModelID: viper.GetString("model"),
		APIBase: viper.GetString("api_base"),
		Rate:    viper.GetInt("sample_rate"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Key     string `json:"-"`
	ModelID string `json:"model"`
	APIBase string `json:"api_base"`
	Rate    int    `json:"sample_rate"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) APIKey() string   { return f.Key }
func (f *fileConfig) Model() string    { return f.ModelID }
func (f *fileConfig) BaseURL() string  { return f.APIBase }
func (f *fileConfig) SampleRate() int  { return f.Rate }
