package providers

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/secretkit/logger"
	"github.com/kbukum/secretkit/secret"
)

const defaultYAMLPath = "~/.config/secretkit/keys.yaml"

// YAMLFile stores keys as a flat YAML mapping on disk. Read/write.
type YAMLFile struct {
	path string
	log  *logger.Logger
}

// NewYAMLFile constructs the YAML file provider. Options:
//   - file_path: location of the keys file (default ~/.config/secretkit/keys.yaml)
func NewYAMLFile(options map[string]any) (secret.Provider, error) {
	return &YAMLFile{
		path: expandPath(optString(options, "file_path", defaultYAMLPath)),
		log:  logger.Get("yaml_file"),
	}, nil
}

func (p *YAMLFile) Name() string { return "yaml_file" }

func (p *YAMLFile) GetKey(ctx context.Context, name string) (string, error) {
	keys, err := p.load()
	if err != nil {
		return "", err
	}
	return keys[name], nil
}

func (p *YAMLFile) SupportsWrite() bool { return true }

func (p *YAMLFile) WriteKey(ctx context.Context, name, value string) error {
	keys, err := p.load()
	if err != nil {
		p.log.Warn("rewriting unreadable keys file", logger.ErrorFields("write", err))
		keys = make(map[string]string)
	}
	keys[name] = value
	return p.save(keys)
}

func (p *YAMLFile) ValidateKey(name, value string) bool {
	return validKeyName(name)
}

func (p *YAMLFile) Describe() map[string]any {
	return map[string]any{
		"name":           p.Name(),
		"supports_write": true,
		"file_path":      p.path,
	}
}

func (p *YAMLFile) load() (map[string]string, error) {
	keys := make(map[string]string)
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return keys, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, err
	}
	if keys == nil {
		keys = make(map[string]string)
	}
	return keys, nil
}

func (p *YAMLFile) save(keys map[string]string) error {
	if err := ensureParentDir(p.path); err != nil {
		return err
	}
	data, err := yaml.Marshal(keys)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}
