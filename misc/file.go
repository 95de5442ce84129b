package misc

import (
	"errors"
	"fmt"
	"os"
)

// ReadFile reads the named file in one call.
func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	fileBytes, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s - %s", fileName, err)
	}
	return fileBytes, nil
}

// WriteFile creates or truncates the named file with the given contents.
func WriteFile(fileName string, contents []byte) error {
	if fileName == "" {
		return errors.New("no filename supplied")
	}
	if err := os.WriteFile(fileName, contents, 0644); err != nil {
		return fmt.Errorf("unable to write %s - %s", fileName, err)
	}
	return nil
}
