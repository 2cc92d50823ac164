package router

import (
	"fmt"
	"strings"

	"github.com/pathmux/router/radix"
)

// checkPath reports an error wrapping radix.ErrInvalidPath if the path
// does not begin with '/'.
func checkPath(path string) error {
	if len(path) == 0 || !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: path must begin with '/' in path '%s'", radix.ErrInvalidPath, path)
	}

	return nil
}

func validatePath(path string) {
	if err := checkPath(path); err != nil {
		panic(err)
	}
}
