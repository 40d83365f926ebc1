package resize

import (
	"github.com/stretchr/testify/mock"
)

// MockLauncher is a mock implementation of the Launcher interface.
type MockLauncher struct {
	mock.Mock
}

func (m *MockLauncher) Open(dir string) error {
	args := m.Called(dir)
	return args.Error(0)
}

// MockReporter is a mock implementation of the Reporter interface.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Status(message string) {
	m.Called(message)
}

func (m *MockReporter) Progress(p Progress) {
	m.Called(p)
}

func (m *MockReporter) Error(title, message string) {
	m.Called(title, message)
}

// recordingReporter keeps every call in order, for tests that care about sequence.
type recordingReporter struct {
	statuses []string
	progress []Progress
	errors   []string
}

func (r *recordingReporter) Status(message string) {
	r.statuses = append(r.statuses, message)
}

func (r *recordingReporter) Progress(p Progress) {
	r.progress = append(r.progress, p)
}

func (r *recordingReporter) Error(title, message string) {
	r.errors = append(r.errors, title+": "+message)
}

// lastStatus returns the status line a user would currently see.
func (r *recordingReporter) lastStatus() string {
	if len(r.statuses) == 0 {
		return ""
	}
	return r.statuses[len(r.statuses)-1]
}
