package mocks

import (
	"io"

	"github.com/onboarding-qr-generator/internal/models"
)

// MockRenderer is a mock implementation of service.DocumentRenderer
type MockRenderer struct {
	Pages       int
	RenderErr   error
	RenderCalls int
	LastHandout *models.Handout
	Output      []byte
}

func (m *MockRenderer) Render(h *models.Handout, w io.Writer) (int, error) {
	m.RenderCalls++
	m.LastHandout = h
	if m.RenderErr != nil {
		return 0, m.RenderErr
	}
	out := m.Output
	if out == nil {
		out = []byte("%PDF-stub")
	}
	if _, err := w.Write(out); err != nil {
		return 0, err
	}
	return m.Pages, nil
}
