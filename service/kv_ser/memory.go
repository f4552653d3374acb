package kv_ser

// MemoryStore 纯内存底座，进程退出即丢失，用于测试和无持久化场景
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore 创建内存底座
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get 读取键值，键不存在时ok为false
func (s *MemoryStore) Get(key string) (string, bool, error) {
	val, ok := s.data[key]
	return val, ok, nil
}

// Set 写入键值
func (s *MemoryStore) Set(key string, value string) error {
	s.data[key] = value
	return nil
}

// Remove 删除键
func (s *MemoryStore) Remove(key string) error {
	delete(s.data, key)
	return nil
}
