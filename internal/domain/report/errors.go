package report

import "errors"

// Report domain errors
var (
	// ErrReportNotAvailable means the upstream has not generated the report
	// for the requested period yet; export controls stay disabled.
	ErrReportNotAvailable = errors.New("report has not been generated for this period")
)
