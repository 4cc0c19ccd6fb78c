package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFile is the file read by NewDotEnvProvider when no path is given.
const DotEnvFile = ".env"

// EnvProvider provides environment variable access.
type EnvProvider interface {
	// Get returns the value of the environment variable named by the key.
	Get(key string) string
}

// OSEnvProvider reads from the actual environment using os.Getenv.
type OSEnvProvider struct{}

// NewEnvProvider creates a new OSEnvProvider.
func NewEnvProvider() *OSEnvProvider {
	return &OSEnvProvider{}
}

// Get returns the value of the environment variable named by the key.
func (e *OSEnvProvider) Get(key string) string {
	return os.Getenv(key)
}

// DotEnvProvider serves values from a .env file, falling back to another
// provider for keys the file does not define. Values in the process
// environment win over the file, matching godotenv.Load.
type DotEnvProvider struct {
	values   map[string]string
	fallback EnvProvider
}

// NewDotEnvProvider reads the .env file at path (DotEnvFile if empty).
// A missing file yields a provider that simply delegates to fallback.
func NewDotEnvProvider(path string, fallback EnvProvider) (*DotEnvProvider, error) {
	if path == "" {
		path = DotEnvFile
	}
	if fallback == nil {
		fallback = NewEnvProvider()
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return &DotEnvProvider{fallback: fallback}, err
		}
		values = nil
	}

	return &DotEnvProvider{values: values, fallback: fallback}, nil
}

// Get returns the fallback's value if set, otherwise the value from the .env file.
func (d *DotEnvProvider) Get(key string) string {
	if v := d.fallback.Get(key); v != "" {
		return v
	}
	return d.values[key]
}
