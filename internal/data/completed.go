package data

// CompletedSet множество выполненных упражнений с сохранением порядка добавления.
// Порядок нужен, чтобы сериализованный массив совпадал с тем, что видел пользователь.
type CompletedSet struct {
	names []string
	index map[string]struct{}
}

// NewCompletedSet создает множество из списка имен, дубликаты отбрасываются
func NewCompletedSet(names []string) *CompletedSet {
	s := &CompletedSet{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Has проверяет, выполнено ли упражнение
func (s *CompletedSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Add добавляет упражнение в конец множества
func (s *CompletedSet) Add(name string) {
	if s.Has(name) {
		return
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
}

// Remove удаляет упражнение из множества
func (s *CompletedSet) Remove(name string) {
	if !s.Has(name) {
		return
	}
	delete(s.index, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// Len возвращает количество выполненных упражнений
func (s *CompletedSet) Len() int {
	return len(s.names)
}

// Names возвращает копию имен в порядке добавления
func (s *CompletedSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
