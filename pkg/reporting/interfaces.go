package reporting

// Package reporting renders sweep results to the console and to files.

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputReport(report *SweepReport)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteRankingCSV(report *SweepReport, path string) error
	WriteReportXLSX(report *SweepReport, path string) error
	WriteBestConfigJSON(report *SweepReport, path string) error
}

// Reporter combines console and file reporting
type Reporter interface {
	ConsoleReporter
	FileReporter
}
