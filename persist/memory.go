package persist

// Memory is an in-process gateway used by tests.
type Memory struct {
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	blob, ok := m.blobs[key]
	return blob, ok, nil
}

func (m *Memory) Save(key string, blob []byte) error {
	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}
