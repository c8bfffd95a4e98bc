package handlers

import "mime/multipart"

// mockStorage records asset operations without touching the filesystem.
type mockStorage struct {
	acceptRef string // returned by Accept; empty means "reject"
	accepted  []string
	removed   []string
}

func (m *mockStorage) Accept(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	m.accepted = append(m.accepted, fh.Filename)
	return m.acceptRef, nil
}

func (m *mockStorage) Replace(oldRef string, fh *multipart.FileHeader) (string, error) {
	if err := m.Remove(oldRef); err != nil {
		return "", err
	}
	return m.Accept(fh)
}

func (m *mockStorage) Remove(ref string) error {
	if ref != "" {
		m.removed = append(m.removed, ref)
	}
	return nil
}
