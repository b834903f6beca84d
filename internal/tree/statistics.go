package tree

import (
	"fmt"
	"io"
)

const (
	// directoriesOnlySummaryFormat is the summary line without a file count.
	directoriesOnlySummaryFormat = "%d directories"
	// fullSummaryFormat is the summary line including the file count.
	fullSummaryFormat = "%d directories, %d files"
)

// FormatStatistics returns the summary line for the given counts. The
// words "directories" and "files" are literal regardless of count.
func FormatStatistics(directoryCount int, fileCount int, directoriesOnly bool) string {
	if directoriesOnly {
		return fmt.Sprintf(directoriesOnlySummaryFormat, directoryCount)
	}
	return fmt.Sprintf(fullSummaryFormat, directoryCount, fileCount)
}

// ReportStatistics prints a blank separator line followed by the
// summary line to outputWriter.
func ReportStatistics(outputWriter io.Writer, directoryCount int, fileCount int, directoriesOnly bool) {
	fmt.Fprintln(outputWriter)
	fmt.Fprintln(outputWriter, FormatStatistics(directoryCount, fileCount, directoriesOnly))
}
