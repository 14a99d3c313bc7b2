package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const _envFile = ".env"

// loadEnvFile exports the variables defined in the given dotenv file unless
// they are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for k, v := range env {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
