package repository

import (
	"os"
	"strings"
)

// FindFileWithSuffixes returns the first directory entry name matching an inclusion suffix
func FindFileWithSuffixes(dirPath string, inclusionSuffix, exclusionSuffix []string) (string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

outer:
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, suffix := range inclusionSuffix {
			if strings.HasSuffix(entry.Name(), suffix) {

				for _, exclusion := range exclusionSuffix {
					if strings.HasSuffix(entry.Name(), exclusion) {
						continue outer
					}
				}

				return entry.Name(), nil

			}
		}
	}
	return "", nil
}
