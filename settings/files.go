package settings

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Lists yaml files of the config location.
// Single file is returned as is, folders are walked recursively.
// Files starting with underscore are skipped.
func listConfigFiles(location string) ([]string, error) {
	fi, err := os.Stat(location)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		return []string{location}, nil
	}

	fileList := make([]string, 0)
	err = filepath.Walk(location, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if f.IsDir() || !isValidConfigFileName(path) {
			return nil
		}

		fileList = append(fileList, path)
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(fileList)
	return fileList, nil
}

// Reads a single config file.
func readConfigFile(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}

// Checks whether file should be loaded.
func isValidConfigFileName(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "_") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// Returns location of the named file next to the config.
func siblingPath(location string, name string) string {
	fi, err := os.Stat(location)
	if err != nil || !fi.IsDir() {
		return filepath.Join(filepath.Dir(location), name)
	}

	return filepath.Join(location, name)
}

// Checks whether regular file exists.
func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
