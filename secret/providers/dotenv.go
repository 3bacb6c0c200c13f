package providers

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/kbukum/secretkit/secret"
)

const defaultDotenvPath = ".env"

// Dotenv stores keys in a .env-format file. Read/write. Writes rewrite
// the file, preserving all existing entries.
type Dotenv struct {
	path string
}

// NewDotenv constructs the .env file provider. Options:
//   - file_path: location of the .env file (default .env in the working directory)
func NewDotenv(options map[string]any) (secret.Provider, error) {
	return &Dotenv{
		path: expandPath(optString(options, "file_path", defaultDotenvPath)),
	}, nil
}

func (p *Dotenv) Name() string { return "dotenv" }

func (p *Dotenv) GetKey(ctx context.Context, name string) (string, error) {
	values, err := p.load()
	if err != nil {
		return "", err
	}
	return values[name], nil
}

func (p *Dotenv) SupportsWrite() bool { return true }

func (p *Dotenv) WriteKey(ctx context.Context, name, value string) error {
	values, err := p.load()
	if err != nil {
		return err
	}
	values[name] = value
	if err := ensureParentDir(p.path); err != nil {
		return err
	}
	return godotenv.Write(values, p.path)
}

func (p *Dotenv) ValidateKey(name, value string) bool {
	return validKeyName(name)
}

func (p *Dotenv) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": true,
		"file_path":      p.path,
	}
}

func (p *Dotenv) load() (map[string]string, error) {
	values, err := godotenv.Read(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	return values, nil
}
