package catalog

import "strings"

type FileType string

const (
	FileTypeUnknown  FileType = "unknown"
	FileTypeDocument FileType = "doc"
	FileTypeSheet    FileType = "sheet"
	FileTypeSlide    FileType = "slide"
	FileTypePDF      FileType = "pdf"
	FileTypeFile     FileType = "file"
)

// FileTypeOf guesses the kind of a hosted file from its URL.
func FileTypeOf(url string) FileType {
	switch {
	case url == "":
		return FileTypeUnknown
	case strings.Contains(url, "document"):
		return FileTypeDocument
	case strings.Contains(url, "spreadsheets"):
		return FileTypeSheet
	case strings.Contains(url, "presentation"):
		return FileTypeSlide
	case strings.Contains(url, "pdf"):
		return FileTypePDF
	default:
		return FileTypeFile
	}
}

// BrowserURL turns a viewer link into the editor link opened in a browser.
func BrowserURL(url string) string {
	return strings.Replace(url, "/view", "/edit", 1)
}
