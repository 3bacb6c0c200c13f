package providers

import (
	"context"
	"encoding/json"
	"os"

	"github.com/kbukum/secretkit/logger"
	"github.com/kbukum/secretkit/secret"
)

const defaultJSONPath = "~/.config/secretkit/keys.json"

// JSONFile stores keys as a flat JSON object on disk. Read/write.
type JSONFile struct {
	path string
	log  *logger.Logger
}

// NewJSONFile constructs the JSON file provider. Options:
//   - file_path: location of the keys file (default ~/.config/secretkit/keys.json)
func NewJSONFile(options map[string]any) (secret.Provider, error) {
	return &JSONFile{
		path: expandPath(optString(options, "file_path", defaultJSONPath)),
		log:  logger.Get("json_file"),
	}, nil
}

func (p *JSONFile) Name() string { return "json_file" }

func (p *JSONFile) GetKey(ctx context.Context, name string) (string, error) {
	keys, err := p.load()
	if err != nil {
		return "", err
	}
	return keys[name], nil
}

func (p *JSONFile) SupportsWrite() bool { return true }

func (p *JSONFile) WriteKey(ctx context.Context, name, value string) error {
	keys, err := p.load()
	if err != nil {
		// A corrupt file should not block writes forever; start fresh.
		p.log.Warn("rewriting unreadable keys file", logger.ErrorFields("write", err))
		keys = make(map[string]string)
	}
	keys[name] = value
	return p.save(keys)
}

func (p *JSONFile) ValidateKey(name, value string) bool {
	return validKeyName(name)
}

func (p *JSONFile) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": true,
		"file_path":      p.path,
	}
}

func (p *JSONFile) load() (map[string]string, error) {
	keys := make(map[string]string)
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return keys, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (p *JSONFile) save(keys map[string]string) error {
	if err := ensureParentDir(p.path); err != nil {
		return err
	}
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, append(data, '\n'), 0o600)
}
