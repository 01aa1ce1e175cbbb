package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wbrown/ansibanner"
)

const (
	localConfigName = ".ansibanner.yaml"
	userConfigName  = "config.yaml"
)

// configCandidates lists the config files to try, in order: the local
// directory, then the XDG config home.
func configCandidates(dir string, lookupEnv func(string) (string, bool)) []string {
	paths := []string{filepath.Join(dir, localConfigName)}
	if xdg, ok := lookupEnv("XDG_CONFIG_HOME"); ok && xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ansibanner", userConfigName))
	} else if home, ok := lookupEnv("HOME"); ok && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "ansibanner", userConfigName))
	}
	return paths
}

// loadConfigFile reads the explicit config file, or the first candidate
// that exists. It returns an empty ConfigFile and path when none is found.
func loadConfigFile(explicit string, candidates []string) (*ansibanner.ConfigFile, string, error) {
	if explicit != "" {
		f, err := readConfig(explicit)
		return f, explicit, err
	}
	for _, path := range candidates {
		f, err := readConfig(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return f, path, err
	}
	return &ansibanner.ConfigFile{}, "", nil
}

func readConfig(path string) (*ansibanner.ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ansibanner.LoadConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
