package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подгружает .env (если файл есть) и применяет флаги командной строки поверх окружения.
// Переменные, уже заданные в окружении, не перезаписываются.
func Load(args []string) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	port := flags.String("port", "", "Server port (overrides PORT environment variable)")
	logLevel := flags.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")

	err = flags.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      *port,
		"LOG_LEVEL": *logLevel,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		err := os.Setenv(key, value)
		if err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
