package reporting

// DefaultReporter bundles all reporters behind the Reporter interface.
type DefaultReporter struct {
	*DefaultConsoleReporter
	*DefaultCSVReporter
	*DefaultExcelReporter
	*DefaultJSONReporter
}

// NewDefaultReporter creates a reporter with all output formats enabled.
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: NewDefaultConsoleReporter(),
		DefaultCSVReporter:     NewDefaultCSVReporter(),
		DefaultExcelReporter:   NewDefaultExcelReporter(),
		DefaultJSONReporter:    NewDefaultJSONReporter(),
	}
}

var _ Reporter = (*DefaultReporter)(nil)
