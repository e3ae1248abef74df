package usecase

// State — текущее состояние отложенной записи (idle|pending|flushing).
func (s *OrderService) State() string { return s.currentState().String() }
