package report

// ClientError is a browser-side failure sent by the web app.
type ClientError struct {
	Message        string `json:"message"`
	URL            string `json:"url,omitempty"`
	UserAgent      string `json:"userAgent,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
	Stack          string `json:"stack,omitempty"`
	ComponentStack string `json:"componentStack,omitempty"`
	ErrorBoundary  bool   `json:"errorBoundary,omitempty"`
	Source         string `json:"source,omitempty"`
	Line           int    `json:"lineno,omitempty"`
	Column         int    `json:"colno,omitempty"`
}

func (e ClientError) key() string {
	return e.Message + ":" + e.Stack
}
