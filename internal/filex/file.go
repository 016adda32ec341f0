// Package filex reads local files the CLI uploads.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxImageSize caps avatar uploads.
const MaxImageSize = 5 << 20

// ReadImage loads path and sniffs its content type. Files larger than
// maxSize or not recognised as images are rejected.
func ReadImage(path string, maxSize int64) ([]byte, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > maxSize {
		return nil, "", fmt.Errorf("%s is %d bytes, limit is %d", path, fi.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%s is not an image (%s)", path, contentType)
	}
	return data, contentType, nil
}
