//go:build !darwin

package wm

import "fmt"

func newCocoa() (WindowServer, error) {
	return nil, fmt.Errorf("the cocoa backend is only available on macOS")
}
