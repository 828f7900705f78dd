package ratetable

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// LoadFile reads one rate table document (YAML or JSON) and validates it.
func LoadFile(path string) (Set, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Set{}, errors.Wrapf(err, "read rate table %s", path)
	}
	var set Set
	if err := v.Unmarshal(&set); err != nil {
		return Set{}, errors.Wrapf(err, "decode rate table %s", path)
	}
	if err := set.Validate(); err != nil {
		return Set{}, errors.Wrapf(err, "rate table %s", path)
	}
	return set, nil
}

// LoadDir loads every rate table file in dir, ordered by file name.
func LoadDir(dir string) ([]Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read rate table dir %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isTableFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	sets := make([]Set, 0, len(files))
	for _, file := range files {
		set, err := LoadFile(filepath.Join(dir, file))
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// EncodeYAML renders set in the same layout LoadFile accepts.
func EncodeYAML(set Set) ([]byte, error) {
	out, err := yaml.Marshal(set)
	if err != nil {
		return nil, errors.Wrap(err, "encode rate table")
	}
	return out, nil
}

func isTableFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
