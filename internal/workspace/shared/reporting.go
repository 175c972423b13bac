package shared

import (
	"fmt"
	"io"
)

const (
	clonedOutcomeTemplateConstant            = "CLONED: %s\n"
	clonedWithBranchOutcomeTemplateConstant  = "CLONED: %s (%s)\n"
	updatedOutcomeTemplateConstant           = "UPDATED: %s\n"
	updatedWithBranchOutcomeTemplateConstant = "UPDATED: %s (%s)\n"
	checkedOutOutcomeTemplateConstant        = "CHECKED OUT: %s (%s)\n"
	skippedOutcomeTemplateConstant           = "SKIPPED: %s\n"
	notRepositoryOutcomeTemplateConstant     = "WARNING: %s exists but is not a git repository\n"
)

type writerReporter struct {
	writer io.Writer
}

// NewWriterReporter constructs a reporter that prints one outcome line per repository.
func NewWriterReporter(writer io.Writer) RepositoryStatusReporter {
	return writerReporter{writer: writer}
}

// NoopReporter discards repository outcomes.
type NoopReporter struct{}

// ReportOutcome implements RepositoryStatusReporter without producing output.
func (NoopReporter) ReportOutcome(RepositoryOutcome) {}

// ReportOutcome prints the outcome using the status specific template.
func (reporter writerReporter) ReportOutcome(outcome RepositoryOutcome) {
	if reporter.writer == nil {
		return
	}

	switch outcome.Status {
	case StatusCloned:
		if len(outcome.BranchName) > 0 {
			fmt.Fprintf(reporter.writer, clonedWithBranchOutcomeTemplateConstant, outcome.Path, outcome.BranchName)
			return
		}
		fmt.Fprintf(reporter.writer, clonedOutcomeTemplateConstant, outcome.Path)
	case StatusUpdated:
		if len(outcome.BranchName) > 0 {
			fmt.Fprintf(reporter.writer, updatedWithBranchOutcomeTemplateConstant, outcome.Path, outcome.BranchName)
			return
		}
		fmt.Fprintf(reporter.writer, updatedOutcomeTemplateConstant, outcome.Path)
	case StatusCheckedOut:
		fmt.Fprintf(reporter.writer, checkedOutOutcomeTemplateConstant, outcome.Path, outcome.BranchName)
	case StatusSkipped:
		fmt.Fprintf(reporter.writer, skippedOutcomeTemplateConstant, outcome.Path)
	case StatusNotRepository:
		fmt.Fprintf(reporter.writer, notRepositoryOutcomeTemplateConstant, outcome.Path)
	}
}
