package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает .env (и дополнительные файлы, если переданы) без перезаписи
// уже выставленных переменных. Флаг -port имеет приоритет над PORT.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	var portFlag string
	if flag.Lookup("port") == nil {
		flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
