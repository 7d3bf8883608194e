package testutil

import (
	"os"

	"github.com/subosito/gotenv"
)

// LoadTestEnv loads .env.test into the process environment when the
// file exists. Integration tests call this before reading config so a
// developer's shell stays clean.
func LoadTestEnv() {
	for _, path := range []string{".env.test", "../.env.test", "../../.env.test"} {
		if _, err := os.Stat(path); err == nil {
			_ = gotenv.OverLoad(path)
			return
		}
	}
}
