package cmd

import "fmt"

// LinksFileNotFoundError indicates the input links file is missing. This is
// the one configuration failure that aborts the whole run.
type LinksFileNotFoundError struct {
	Path string
}

func (e *LinksFileNotFoundError) Error() string {
	return fmt.Sprintf("links file %s not found", e.Path)
}

// EmptyLinksError signals a links file with no usable entries.
type EmptyLinksError struct {
	Path string
}

func (e *EmptyLinksError) Error() string {
	return fmt.Sprintf("no links found in %s", e.Path)
}
